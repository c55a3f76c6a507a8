package model

// Tag 对应 tags 表，名称唯一。标签只支持创建和删除，没有重命名操作。
type Tag struct {
	ID   int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name *string `gorm:"column:nome" json:"nome"`
}

// TableName 指定 GORM 使用的表名
func (Tag) TableName() string {
	return "tags"
}

// TopicTag 是主题与标签的多对多关联，(topico_id, tag_id) 为联合主键。
type TopicTag struct {
	TopicID int64 `gorm:"column:topico_id;primaryKey;autoIncrement:false" json:"topico_id"`
	TagID   int64 `gorm:"column:tag_id;primaryKey;autoIncrement:false" json:"tag_id"`
}

// TableName 指定 GORM 使用的表名
func (TopicTag) TableName() string {
	return "topico_tags"
}

// TagDiff 描述一次标签集合替换实际新增和移除的标签 ID。
type TagDiff struct {
	Added   []int64 `json:"added"`
	Removed []int64 `json:"removed"`
}
