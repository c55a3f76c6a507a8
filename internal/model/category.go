package model

// Category 对应 categorias 表，是主题的顶层分组。
// Name 使用指针：请求中缺失的字段以 NULL 写入，由 NOT NULL 约束拒绝。
type Category struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        *string `gorm:"column:nome" json:"nome"`
	Description *string `gorm:"column:descricao" json:"descricao"`
}

// TableName 指定 GORM 使用的表名
func (Category) TableName() string {
	return "categorias"
}
