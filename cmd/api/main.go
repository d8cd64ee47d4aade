package main

import (
	"os"
	"time"

	"Tech_Circulo/internal/config"
	"Tech_Circulo/internal/model"
	"Tech_Circulo/internal/pkg"
	"Tech_Circulo/internal/repository/mysql"
	"Tech_Circulo/internal/repository/redis"
	"Tech_Circulo/internal/router"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env 不存在时静默跳过，直接读环境变量
	_ = godotenv.Load()
	cfg := config.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	pkg.SetSecrets(cfg.JWTAccessSecret, cfg.JWTRefreshSecret)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		log.Fatal().Err(err).Msg("mysql init failed")
	}

	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		log.Fatal().Err(err).Msg("redis init failed")
	}
	defer redis.Close()

	// 自动建表（开发阶段 OK）
	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Community{},
		&model.Membership{},
		&model.Post{},
		&model.PostLike{},
		&model.PostBookmark{},
		&model.PostReport{},
		&model.Comment{},
		&model.Announcement{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto migrate failed")
	}

	r := router.InitRouter(cfg)
	log.Info().Str("addr", cfg.HTTPAddr).Msg("server starting")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
