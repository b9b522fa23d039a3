package services

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"

	"github.com/ascend-app/ascend_api/docs"
	"github.com/ascend-app/ascend_api/services/handlers"
	"github.com/ascend-app/ascend_api/shared"
)

// rateLimiter is implemented by the rate limit middleware service. Declared
// here so the HTTP layer does not import the middleware package directly.
type rateLimiter interface {
	IPRateLimit() fiber.Handler
	WriteRateLimit() fiber.Handler
	MissionToggleRateLimit() fiber.Handler
}

type HttpService struct {
	context.DefaultService

	progSvc       *ProgressionService
	missionSvc    *MissionService
	focusSvc      *FocusService
	noteSvc       *NoteService
	monitoringSvc *MonitoringService

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

// RATE_LIMIT_SVC mirrors the middleware service id without importing it.
const RATE_LIMIT_SVC = "rate_limit"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.progSvc = svc.Service(PROGRESSION_SVC).(*ProgressionService)
	svc.missionSvc = svc.Service(MISSION_SVC).(*MissionService)
	svc.focusSvc = svc.Service(FOCUS_SVC).(*FocusService)
	svc.noteSvc = svc.Service(NOTE_SVC).(*NoteService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	docs.SwaggerInfo.BasePath = ""

	app := fiber.New(fiber.Config{
		AppName:      SERVICE_NAME,
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: svc.handleError,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(MonitoringMiddleware(svc.monitoringSvc))

	limiter := svc.Service(RATE_LIMIT_SVC).(rateLimiter)
	app.Use(limiter.IPRateLimit())

	app.Get("/ping", svc.ping)
	app.Get("/swagger/*", fiberSwagger.HandlerDefault)

	svc.registerRoutes(app, limiter)

	svc.server = app
	log.Info().Int("port", svc.port).Msg("HTTP server started")
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) registerRoutes(app *fiber.App, limiter rateLimiter) {
	profileHandler := handlers.NewProfileHandler(svc.progSvc)
	missionHandler := handlers.NewMissionHandler(svc.missionSvc)
	focusHandler := handlers.NewFocusHandler(svc.focusSvc)
	noteHandler := handlers.NewNoteHandler(svc.noteSvc)

	v1 := app.Group("/api/v1")

	v1.Get("/ping", svc.ping)

	v1.Get("/profile", profileHandler.GetProfile)
	v1.Put("/profile/name", limiter.WriteRateLimit(), profileHandler.UpdateName)
	v1.Post("/profile/attributes/spend", limiter.WriteRateLimit(), profileHandler.SpendAttribute)
	v1.Get("/stats", profileHandler.GetStats)

	v1.Get("/missions", missionHandler.ListMissions)
	v1.Post("/missions", limiter.WriteRateLimit(), missionHandler.CreateMission)
	v1.Get("/missions/:id", missionHandler.GetMission)
	v1.Put("/missions/:id", limiter.WriteRateLimit(), missionHandler.UpdateMission)
	v1.Delete("/missions/:id", limiter.WriteRateLimit(), missionHandler.DeleteMission)
	v1.Post("/missions/:id/toggle", limiter.MissionToggleRateLimit(), missionHandler.ToggleMission)

	v1.Get("/focus", focusHandler.GetState)
	v1.Put("/focus/mode", focusHandler.SetMode)
	v1.Put("/focus/duration", focusHandler.SetDuration)
	v1.Put("/focus/mission", focusHandler.AttachMission)
	v1.Post("/focus/start", focusHandler.Start)
	v1.Post("/focus/pause", focusHandler.Pause)
	v1.Post("/focus/finish", focusHandler.Finish)
	v1.Post("/focus/reset", focusHandler.Reset)
	v1.Get("/focus/history", focusHandler.History)

	v1.Get("/notes", noteHandler.ListNotes)
	v1.Post("/notes", limiter.WriteRateLimit(), noteHandler.CreateNote)
	v1.Get("/notes/:id", noteHandler.GetNote)
	v1.Put("/notes/:id", limiter.WriteRateLimit(), noteHandler.UpdateNote)
	v1.Delete("/notes/:id", limiter.WriteRateLimit(), noteHandler.DeleteNote)

	app.Use(func(c *fiber.Ctx) error {
		return shared.ResponseNotFound(c)
	})
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")

	return shared.ResponseJSON(c, http.StatusOK, "Success", "pong")
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	if fiberErr, ok := err.(*fiber.Error); ok {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("Unhandled error")
	return shared.ResponseInternalError(c, err)
}
