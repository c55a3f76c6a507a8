package model

// Image 对应 imagens 表。目前没有写入接口，只在主题详情中只读返回。
type Image struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TopicID     *int64    `gorm:"column:topico_id" json:"topico_id"`
	Path        string    `gorm:"column:caminho" json:"caminho"`
	Description *string   `gorm:"column:descricao" json:"descricao"`
	Order       *int64    `gorm:"column:ordem" json:"ordem"`
	CreatedAt   Timestamp `gorm:"column:created_at;->" json:"created_at"`
}

// TableName 指定 GORM 使用的表名
func (Image) TableName() string {
	return "imagens"
}
