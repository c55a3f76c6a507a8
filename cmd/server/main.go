package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"filosofia_go/internal/config"
	"filosofia_go/internal/events"
	"filosofia_go/internal/handler"
	"filosofia_go/internal/repository"
	"filosofia_go/internal/service"
	"filosofia_go/pkg/database"
	"filosofia_go/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "configs/config.yaml", "path to the YAML config file")
	pflag.Parse()

	config.Init(*configPath)
	cfg := config.Conf

	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync()

	database.Init(database.Options{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN,
		LogSQL: cfg.Log.SQL,
	})
	defer func() {
		if err := database.Close(database.DB); err != nil {
			log.Error("Failed to close database", err)
		}
	}()
	// 每次启动都执行，已记录的版本会被跳过
	if err := database.RunMigrate(database.DB); err != nil {
		log.Fatal("Failed to run migrations", err)
		return
	}

	// 仓库 → 服务
	categoryRepo := repository.NewCategoryRepository(database.DB)
	topicRepo := repository.NewTopicRepository(database.DB)
	tagRepo := repository.NewTagRepository(database.DB)
	topicTagRepo := repository.NewTopicTagRepository(database.DB)
	imageRepo := repository.NewImageRepository(database.DB)

	categoryService := service.NewCategoryService(categoryRepo)
	topicService := service.NewTopicService(topicRepo, tagRepo, topicTagRepo, imageRepo)
	tagService := service.NewTagService(tagRepo)

	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	hub := events.NewHub()
	go hub.Run(hubCtx)

	gin.SetMode(cfg.Server.Mode)
	r := handler.NewRouter(handler.RouterDeps{
		Categories:  categoryService,
		Topics:      topicService,
		Tags:        tagService,
		Hub:         hub,
		CORSOrigins: cfg.Server.CORSOrigins,
	})

	// 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	// 等待中断信号以实现优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("接收到停机信号，正在关闭服务...")

	// 设置一个5秒的超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("HTTP 服务器关闭失败: %v", err)
	}
	stopHub()

	log.Info("服务已优雅关闭")
}
