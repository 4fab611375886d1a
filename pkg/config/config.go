package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// DB
	PGDSN string `envconfig:"PG_DSN" required:"true"`
	// JWT
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"60"`
	// Network
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
	// RabbitMQ
	RabbitURL      string `envconfig:"RABBIT_URL"`
	NotifyQueue    string `envconfig:"NOTIFY_QUEUE" default:"notification_queue"`
	NotifyPrefetch int    `envconfig:"NOTIFY_PREFETCH" default:"16"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
