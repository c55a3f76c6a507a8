// Package database 提供数据库连接、版本化迁移与演示数据初始化。
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"filosofia_go/pkg/log"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // 纯 Go SQLite 驱动，不需要 CGO
	"moul.io/zapgorm2"
)

// DB 全局 GORM 数据库实例，在 Init 成功后可通过 database.DB 使用。
var DB *gorm.DB

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Options 描述如何打开数据库。
type Options struct {
	Driver string
	DSN    string
	// LogSQL 为 true 时 GORM 以 Info 级别输出每条 SQL。
	LogSQL bool
}

// Open 根据驱动类型打开数据库并返回 GORM 实例。
func Open(opts Options) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: newGormLogger(opts.LogSQL)}

	switch strings.ToLower(opts.Driver) {
	case "", DriverSQLite:
		return openSQLite(opts.DSN, gormCfg)
	case DriverMySQL:
		return openMySQL(opts.DSN, gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}
}

func openSQLite(dsn string, gormCfg *gorm.Config) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("sqlite dsn is required")
	}
	if !isMemoryDSN(dsn) {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// 单连接：SQLite 内部串行化访问，:memory: 数据库也只在一个连接上存在。
	sqlDB.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        dsn,
		Conn:       sqlDB,
	}, gormCfg)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("open gorm database: %w", err)
	}
	return db, nil
}

func openMySQL(dsn string, gormCfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open gorm database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	return db, nil
}

func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.HasPrefix(dsn, "file::memory:") || strings.Contains(dsn, "mode=memory")
}

// newGormLogger 把 GORM 日志桥接到 zap。
func newGormLogger(logSQL bool) logger.Interface {
	l := zapgorm2.New(log.GetLogger())
	l.IgnoreRecordNotFoundError = true
	if logSQL {
		return l.LogMode(logger.Info)
	}
	return l.LogMode(logger.Warn)
}

// Init 打开数据库并赋值给全局 DB，失败时调用 log.Fatal 退出进程。
func Init(opts Options) {
	db, err := Open(opts)
	if err != nil {
		log.Fatal("Failed to connect to database", err)
	}
	DB = db
	log.Infow("Database initialized", "driver", opts.Driver, "dsn", opts.DSN)
}

// Close 关闭底层连接。
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
