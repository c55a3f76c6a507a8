package model

// SchemaVersion 记录已经执行过的迁移或种子步骤，每个版本只执行一次。
type SchemaVersion struct {
	Version   int    `gorm:"column:version;primaryKey;autoIncrement:false"`
	Name      string `gorm:"column:name"`
	AppliedAt string `gorm:"column:applied_at;->"`
}

// TableName 指定 GORM 使用的表名
func (SchemaVersion) TableName() string {
	return "schema_versions"
}
