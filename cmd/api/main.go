package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/nugrahsdhka/job-portal-api/internal/handlers"
	"github.com/nugrahsdhka/job-portal-api/internal/middlewares"
	"github.com/nugrahsdhka/job-portal-api/internal/repository"
	"github.com/nugrahsdhka/job-portal-api/internal/service"
	"github.com/nugrahsdhka/job-portal-api/pkg/auth"
	"github.com/nugrahsdhka/job-portal-api/pkg/config"
	"github.com/nugrahsdhka/job-portal-api/pkg/db"
	"github.com/nugrahsdhka/job-portal-api/pkg/logger"
	"github.com/nugrahsdhka/job-portal-api/pkg/mq"
	"github.com/nugrahsdhka/job-portal-api/pkg/obs"
)

func main() {
	_ = godotenv.Load()
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	shutdown := obs.InitTracer("job-portal-api")
	defer func() { _ = shutdown(context.Background()) }()

	gdb := db.Open(cfg.PGDSN)

	users := repository.NewUserRepo(gdb)
	jobs := repository.NewJobRepo(gdb)
	apps := repository.NewApplicationRepo(gdb)
	if err := users.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("migrate users")
	}
	if err := jobs.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("migrate jobs")
	}
	if err := apps.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("migrate applications")
	}

	tokens := auth.NewTokens(cfg.JWTSecret, time.Duration(cfg.JWTExpireMin)*time.Minute)
	notify := mq.NewPublisher(cfg.RabbitURL, cfg.NotifyQueue)

	authSvc := service.NewAuthSvc(users, tokens)
	jobSvc := service.NewJobSvc(jobs)
	appSvc := service.NewApplicationSvc(jobs, apps, notify)

	r := gin.Default()
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "job portal API ready", "status": "success"})
	})

	ah := handlers.NewAuthHandler(authSvc)
	jh := handlers.NewJobHandler(jobSvc, appSvc)
	authed := middlewares.JWTAuth(tokens)

	api := r.Group("/api")
	{
		api.POST("/auth/register", ah.Register)
		api.POST("/auth/login", ah.Login)
		api.GET("/auth/profile", authed, ah.Profile)

		api.POST("/jobs", authed, jh.Create)
		api.GET("/jobs", jh.List)
		api.POST("/jobs/:id/apply", authed, jh.Apply)
		api.GET("/jobs/:id/applicants", authed, jh.Applicants)
	}

	log.Info().Str("addr", cfg.HTTPAddr).Msg("job-portal-api listening")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
