package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/disiplinli/kocumnet-back/internal/api"
	"github.com/disiplinli/kocumnet-back/internal/config"
	"github.com/disiplinli/kocumnet-back/internal/cron"
	"github.com/disiplinli/kocumnet-back/internal/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system env")
	}

	cfg := config.Load()

	db.InitDB(cfg.DBUrl)
	db.ConnectRedis(cfg.RedisAddr)

	r := api.SetupRouter(cfg)

	cron.StartJobs()

	log.Println("Server running on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
