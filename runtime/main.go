package main

import (
	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/ascend-app/ascend_api/middleware"
	"github.com/ascend-app/ascend_api/services"
)

// @title Ascend API
// @version 1.0
// @description Gamified personal progression tracker: missions, focus sessions and XP.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	ctx, err := context.NewCtx(
		&services.SqlService{},
		&services.RedisService{},
		&services.MonitoringService{},

		&services.ProgressionService{},
		&services.MissionService{},
		&services.FocusService{},
		&services.NoteService{},

		&middleware.RateLimitMiddleware{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err)
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err)
		return
	}
}
