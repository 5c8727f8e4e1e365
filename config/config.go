package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"hrms" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret             string `default:"change-me" env:"JWT_SECRET"`
		JWTExpireInSec        int    `default:"3600" env:"JWT_EXPIRE_IN_SEC"`
		JWTRefreshExpireInSec int    `default:"86400" env:"JWT_REFRESH_EXPIRE_IN_SEC"`
	}
	Workflow struct {
		SeedOnStart        *bool   `default:"true" env:"WORKFLOW_SEED_ON_START"`
		AdminEmails        string  `default:"" env:"WORKFLOW_ADMIN_EMAILS"`
		ReminderAfterHours int     `default:"48" env:"WORKFLOW_REMINDER_AFTER_HOURS"`
		MatchTolerancePct  float64 `default:"2.0" env:"INVOICE_MATCH_TOLERANCE_PCT"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		From       string `default:"hrms@localhost" env:"SMTP_FROM"`
	}
	S3 struct {
		Endpoint  string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKey string `default:"" env:"S3_ACCESS_KEY"`
		SecretKey string `default:"" env:"S3_SECRET_KEY"`
		Bucket    string `default:"hrms-documents" env:"S3_BUCKET"`
		UseSSL    *bool  `default:"false" env:"S3_USE_SSL"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
