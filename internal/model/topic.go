package model

// Topic 对应 topicos 表。Question 是展示标题，Body 是正文。
// CategoryID 可为空，且不校验引用的分类是否存在。
type Topic struct {
	ID         int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CategoryID *int64  `gorm:"column:categoria_id" json:"categoria_id"`
	Question   *string `gorm:"column:questao" json:"questao"`
	Body       *string `gorm:"column:topico" json:"topico"`
	// CreatedAt 由数据库默认值填充，写入时忽略。
	CreatedAt *Timestamp `gorm:"column:created_at;->" json:"created_at,omitempty"`
}

// TableName 指定 GORM 使用的表名
func (Topic) TableName() string {
	return "topicos"
}

// TopicDetail 是主题详情接口的响应结构，在 Topic 基础上附带标签与图片。
type TopicDetail struct {
	Topic
	Tags   []Tag   `json:"tags"`
	Images []Image `json:"images"`
}
