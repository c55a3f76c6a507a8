// reader 是目录的终端阅读器，通过带离线缓存的 HTTP 客户端访问服务端。
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"filosofia_go/internal/config"
	"filosofia_go/internal/offline"
	"filosofia_go/internal/reader"
	"filosofia_go/pkg/client"
	"filosofia_go/pkg/database"
	"filosofia_go/pkg/log"
	"filosofia_go/web"

	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "configs/config.yaml", "path to the YAML config file")
	baseURL := pflag.String("server", "", "override client.base_url")
	pflag.Parse()

	config.Init(*configPath)
	cfg := config.Conf
	if *baseURL != "" {
		cfg.Client.BaseURL = *baseURL
	}

	// 终端交互时日志只写文件，避免打乱界面；未配置 output_path 时不输出日志
	if cfg.Log.OutputPath != "" {
		if err := os.MkdirAll(cfg.Log.OutputPath, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "create log directory: %v\n", err)
			os.Exit(1)
		}
		log.InitWithOutputs(cfg.Log.Level, "json", []string{filepath.Join(cfg.Log.OutputPath, "reader.log")})
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := newStore(ctx, cfg)
	tr := offline.NewTransport(nil, store, cfg.Client.CacheName)
	// 安装失败（例如服务端未启动）不影响使用，沿用已有缓存
	if err := tr.Install(ctx, cfg.Client.BaseURL, web.PrecacheAssets); err != nil {
		log.Warnw("offline cache install failed", "error", err)
	} else if err := tr.Activate(ctx); err != nil {
		log.Warnw("offline cache activate failed", "error", err)
	}

	c, err := client.New(cfg.Client.BaseURL,
		client.WithTransport(tr),
		client.WithTimeout(cfg.Client.Timeout),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid client configuration: %v\n", err)
		os.Exit(1)
	}

	if err := reader.Run(ctx, c, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		log.Error("Reader stopped with error", err)
		fmt.Fprintf(os.Stderr, "reader: %v\n", err)
	}
}

// newStore 按配置选择缓存存储；Redis 不可用时退回内存存储。
func newStore(ctx context.Context, cfg config.Config) offline.Store {
	if !strings.EqualFold(cfg.Client.CacheStore, "redis") {
		return offline.NewMemoryStore()
	}
	rdb, err := database.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Warnw("redis unavailable, using in-memory offline cache", "error", err)
		return offline.NewMemoryStore()
	}
	return offline.NewRedisStore(rdb)
}
