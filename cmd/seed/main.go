// seed 向数据库写入演示目录。只会执行一次，结果记录在 schema_versions 中。
package main

import (
	"fmt"

	"filosofia_go/internal/config"
	"filosofia_go/pkg/database"
	"filosofia_go/pkg/log"

	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "configs/config.yaml", "path to the YAML config file")
	dsn := pflag.String("dsn", "", "override database.dsn from the config file")
	pflag.Parse()

	config.Init(*configPath)
	cfg := config.Conf
	if *dsn != "" {
		cfg.Database.DSN = *dsn
	}

	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync()

	db, err := database.Open(database.Options{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN,
		LogSQL: cfg.Log.SQL,
	})
	if err != nil {
		log.Fatal("Failed to connect to database", err)
	}
	defer database.Close(db)

	ran, err := database.RunSeed(db)
	if err != nil {
		log.Fatal("Failed to seed demo catalog", err)
	}
	if ran {
		fmt.Println("demo catalog seeded")
	} else {
		fmt.Println("demo catalog already present, nothing to do")
	}
}
