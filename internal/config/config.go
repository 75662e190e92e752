package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Global
		Populate
		Demo
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Populate struct {
		Num int // Default records per model for populate runs
	}
	Demo struct {
		Enabled        bool          // Enable demo mode
		ReseedSchedule string        // Cron format: "0 * * * *" = hourly
		ReseedNum      int           // Records per model on each reseed
		StartupDelay   time.Duration // Wait before the first reseed check
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("populate_num", 10)

	// Demo mode defaults
	v.SetDefault("demo_mode", false)
	v.SetDefault("demo_reseed_schedule", "0 * * * *") // Hourly at :00
	v.SetDefault("demo_reseed_num", 10)
	v.SetDefault("demo_startup_delay", "5s")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Populate: Populate{
			Num: v.GetInt("POPULATE_NUM"),
		},
		Demo: Demo{
			Enabled:        v.GetBool("DEMO_MODE"),
			ReseedSchedule: v.GetString("DEMO_RESEED_SCHEDULE"),
			ReseedNum:      v.GetInt("DEMO_RESEED_NUM"),
			StartupDelay:   v.GetDuration("DEMO_STARTUP_DELAY"),
		},
	}
}
