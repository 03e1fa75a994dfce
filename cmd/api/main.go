package main

import (
	"context"
	"log"

	"yatube/internal/config"
	"yatube/internal/model"
	"yatube/internal/pkg"
	"yatube/internal/repository/mysql"
	"yatube/internal/repository/redis"
	"yatube/internal/router"
	"yatube/internal/service"
)

func main() {
	cfg := config.Load()
	pkg.SetSecrets(cfg.JWTAccessSecret, cfg.JWTRefreshSecret)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		panic(err)
	}

	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		panic(err)
	}
	defer redis.Close()

	// 自动建表（开发阶段 OK）
	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Post{},
		&model.Comment{},
		&model.Follow{},
		&model.FollowOutbox{},
	); err != nil {
		panic(err)
	}

	smtp := pkg.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}

	// 关注事件投递：没配 kafka 就退化为日志输出
	sender := service.LogSender
	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaBrokers[0] != "" {
		producer := pkg.NewFollowEventProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.NewOutboxRelayer(mysql.DB, sender).Run(ctx)

	emailSvc := service.NewEmailService(smtp)

	r := router.InitRouter(router.Options{
		DB:       mysql.DB,
		Cache:    &redis.PageCacheRepository{},
		Tokens:   redis.NewTokenRepository(cfg.SessionTTL),
		Verifier: emailSvc,
		SMTP:     smtp,
		PageSize: cfg.PageSize,
		CacheTTL: cfg.FeedCacheTTL,
	})
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
