package db

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/disiplinli/kocumnet-back/internal/models"
)

var DB *gorm.DB

// RDB is nil when REDIS_ADDR is unset; callers must treat redis as
// optional.
var RDB *redis.Client

func InitDB(dsn string) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		slog.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	DB = gdb

	if err := Migrate(DB); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	slog.Info("database connected and migrated")
}

// Migrate runs AutoMigrate for every platform entity.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.WeeklyPlanTask{},
		&models.DailyTask{},
		&models.CheckIn{},
		&models.Assignment{},
		&models.Exam{},
		&models.SubjectResult{},
		&models.Message{},
		&models.Question{},
		&models.StuckQuestion{},
		&models.StuckImage{},
		&models.OnlineLesson{},
		&models.TopicProgress{},
		&models.ScheduleEntry{},
	)
}

func ConnectRedis(addr string) {
	if addr == "" {
		slog.Warn("REDIS_ADDR not set, codes and logout denylist fall back to in-memory storage")
		return
	}

	RDB = redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := RDB.Ping(ctx).Result(); err != nil {
		slog.Error("failed to connect redis", "error", err)
		RDB = nil
		return
	}

	slog.Info("redis connected")
}

func PingDB() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
