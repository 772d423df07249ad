package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/config"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/domain"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/handler"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/session"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/store"
)

func main() {
	/**********************************************
	 * 创建 logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * 加载配置
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法加载配置文件", "error", err)
		return
	}

	/**********************************************
	 * 连接 redis
	 **********************************************/
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	/**********************************************
	 * 创建会话仓库（从 redis 恢复用户目录和上次的会话）
	 **********************************************/
	sessions, err := session.NewStore(cfg, rdb)
	if err != nil {
		logger.Error("无法创建会话仓库", "error", err)
		return
	}

	/**********************************************
	 * 确保目录中存在初始管理员
	 **********************************************/
	initialAdmin := &domain.User{
		Email:    cfg.InitialAdmin.Email,
		Password: cfg.InitialAdmin.Password,
		Name:     cfg.InitialAdmin.Name,
		Role:     domain.RoleAdmin,
	}
	if err := sessions.CreateUser(initialAdmin); err != nil {
		switch {
		case errors.Is(err, session.ErrEmailTaken):
			// 目录中已经存在初始管理员，不处理
		default:
			logger.Error("无法创建初始管理员", "error", err)
			return
		}
	}

	/**********************************************
	 * 创建数据仓库（每次启动都重新灌入示例数据）
	 **********************************************/
	dataStore := store.NewStore()

	/**********************************************
	 * 创建 handler
	 **********************************************/
	handler, err := handler.NewHandler(cfg, sessions, dataStore)
	if err != nil {
		logger.Error("无法创建 handler", "error", err)
		return
	}
	handler.RegisterRoutes()

	/**********************************************
	 * 启动 HTTP 服务器
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("正在启动服务器...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("无法启动服务器", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("关闭服务器失败", slog.String("error", err.Error()))
	}
	logger.Info("服务器已成功关闭")
}
