package database

import (
	"errors"
	"fmt"
	"sort"

	"filosofia_go/internal/model"
	"filosofia_go/pkg/log"

	"gorm.io/gorm"
)

// Migration 是一个带版本号的一次性步骤。执行成功后版本号写入 schema_versions，
// 之后再次调用 Apply 会跳过该步骤。
type Migration struct {
	Version int
	Name    string
	Up      func(tx *gorm.DB) error
}

// SchemaMigrations 是服务启动时自动执行的表结构迁移。
var SchemaMigrations = []Migration{
	{Version: 1, Name: "create_catalog_tables", Up: createCatalogTables},
}

var sqliteCatalogDDL = []string{
	`CREATE TABLE IF NOT EXISTS categorias (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nome TEXT NOT NULL,
		descricao TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS topicos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		categoria_id INTEGER,
		questao TEXT NOT NULL,
		topico TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (categoria_id) REFERENCES categorias (id)
	)`,
	`CREATE TABLE IF NOT EXISTS tags (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nome TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS topico_tags (
		topico_id INTEGER,
		tag_id INTEGER,
		PRIMARY KEY (topico_id, tag_id),
		FOREIGN KEY (topico_id) REFERENCES topicos (id),
		FOREIGN KEY (tag_id) REFERENCES tags (id)
	)`,
	`CREATE TABLE IF NOT EXISTS imagens (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		topico_id INTEGER,
		caminho TEXT NOT NULL,
		descricao TEXT,
		ordem INTEGER,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (topico_id) REFERENCES topicos (id)
	)`,
}

// MySQL 下不声明外键约束，与 SQLite 默认不强制外键的行为保持一致。
var mysqlCatalogDDL = []string{
	"CREATE TABLE IF NOT EXISTS categorias (" +
		"id BIGINT PRIMARY KEY AUTO_INCREMENT, " +
		"nome VARCHAR(255) NOT NULL, " +
		"descricao TEXT)",
	"CREATE TABLE IF NOT EXISTS topicos (" +
		"id BIGINT PRIMARY KEY AUTO_INCREMENT, " +
		"categoria_id BIGINT NULL, " +
		"questao TEXT NOT NULL, " +
		"topico TEXT, " +
		"created_at DATETIME DEFAULT CURRENT_TIMESTAMP)",
	"CREATE TABLE IF NOT EXISTS tags (" +
		"id BIGINT PRIMARY KEY AUTO_INCREMENT, " +
		"nome VARCHAR(255) NOT NULL UNIQUE)",
	"CREATE TABLE IF NOT EXISTS topico_tags (" +
		"topico_id BIGINT NOT NULL, " +
		"tag_id BIGINT NOT NULL, " +
		"PRIMARY KEY (topico_id, tag_id))",
	"CREATE TABLE IF NOT EXISTS imagens (" +
		"id BIGINT PRIMARY KEY AUTO_INCREMENT, " +
		"topico_id BIGINT NULL, " +
		"caminho VARCHAR(1024) NOT NULL, " +
		"descricao TEXT, " +
		"ordem INT, " +
		"created_at DATETIME DEFAULT CURRENT_TIMESTAMP)",
}

func createCatalogTables(tx *gorm.DB) error {
	ddl := sqliteCatalogDDL
	if tx.Dialector.Name() == DriverMySQL {
		ddl = mysqlCatalogDDL
	}
	for _, stmt := range ddl {
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureVersionTable(db *gorm.DB) error {
	stmt := `CREATE TABLE IF NOT EXISTS schema_versions (
		version INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if db.Dialector.Name() == DriverMySQL {
		stmt = "CREATE TABLE IF NOT EXISTS schema_versions (" +
			"version INT PRIMARY KEY, " +
			"name VARCHAR(255) NOT NULL, " +
			"applied_at DATETIME DEFAULT CURRENT_TIMESTAMP)"
	}
	return db.Exec(stmt).Error
}

// AppliedVersions 返回已经记录的版本号，按升序排列。
func AppliedVersions(db *gorm.DB) ([]int, error) {
	if err := ensureVersionTable(db); err != nil {
		return nil, fmt.Errorf("create schema_versions: %w", err)
	}
	var versions []int
	if err := db.Model(&model.SchemaVersion{}).Order("version ASC").Pluck("version", &versions).Error; err != nil {
		return nil, fmt.Errorf("read schema_versions: %w", err)
	}
	return versions, nil
}

// Apply 按版本号顺序执行尚未记录的步骤，返回本次实际执行的版本。
// 每个步骤与它的版本记录在同一个事务中提交。
func Apply(db *gorm.DB, migrations []Migration) ([]int, error) {
	applied, err := AppliedVersions(db)
	if err != nil {
		return nil, err
	}
	done := make(map[int]struct{}, len(applied))
	for _, v := range applied {
		done[v] = struct{}{}
	}

	pending := make([]Migration, 0, len(migrations))
	for _, m := range migrations {
		if _, ok := done[m.Version]; !ok {
			pending = append(pending, m)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].Version < pending[j].Version })

	ran := make([]int, 0, len(pending))
	for _, m := range pending {
		if m.Up == nil {
			return ran, fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, errors.New("no up function"))
		}
		log.Infow("Applying migration", "version", m.Version, "name", m.Name)
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Up(tx); err != nil {
				return err
			}
			return tx.Create(&model.SchemaVersion{Version: m.Version, Name: m.Name}).Error
		})
		if err != nil {
			return ran, fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
		}
		ran = append(ran, m.Version)
	}
	return ran, nil
}

// RunMigrate 执行表结构迁移，服务每次启动都会调用，已执行的版本会被跳过。
func RunMigrate(db *gorm.DB) error {
	log.Info("Running migrations...")

	ran, err := Apply(db, SchemaMigrations)
	if err != nil {
		log.Errorf("Failed to run migrations: %v", err)
		return err
	}

	log.Infow("Migrations completed successfully", "applied", ran)
	return nil
}
