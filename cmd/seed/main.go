package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/config"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/session"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/utils"
)

// 往用户目录中灌入一批随机用户，方便本地调试各角色的面板
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
	 * 连接 redis 并恢复已有目录
	 **********************************************/
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	sessions, err := session.NewStore(cfg, rdb)
	if err != nil {
		logger.Error("无法创建会话仓库", "error", err)
		return
	}

	/**********************************************
	 * 生成随机用户
	 **********************************************/
	created := 0
	for i := 0; i < cfg.Seed.UserNumber; i++ {
		user := utils.GenerateRandomUser(cfg.Seed.Password, "mail2.sysu.edu.cn")
		if err := sessions.CreateUser(user); err != nil {
			switch {
			case errors.Is(err, session.ErrEmailTaken):
				// 随机邮箱撞车了，跳过即可
				continue
			default:
				logger.Error("无法创建随机用户", "error", err)
				return
			}
		}
		created++
		logger.Info("已创建随机用户", "email", user.Email, "name", user.Name, "role", user.Role)
	}

	logger.Info("目录灌入完成", "created", created, "total", len(sessions.All()))
}
