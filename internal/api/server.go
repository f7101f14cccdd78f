package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"vocably.app/internal/api/middleware"
	"vocably.app/internal/config"
	"vocably.app/internal/domain"
	"vocably.app/internal/infra"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	Rooms     domain.RoomService
	Interests domain.InterestService
	Community domain.CommunityService
	Quiz      domain.QuizService
	Hub       *infra.WsManager
}

func NewServer(cfg *config.Config, deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: cfg.Server.AppName,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "Service is healthy",
		})
	})

	// Real-time counts channel
	if deps.Hub != nil {
		InitWebsocket(app, deps.Hub, deps.Rooms)
	}

	roomHandler := NewRoomHandler(deps.Rooms)
	interestHandler := NewInterestHandler(deps.Interests)
	communityHandler := NewCommunityHandler(deps.Community)
	quizHandler := NewQuizHandler(deps.Quiz)

	// Community membership
	app.Post("/community-members", communityHandler.SetMembership)
	app.Get("/community-members", communityHandler.GetMembership)

	// Room interest
	app.Post("/room-interest", interestHandler.SetInterest)
	app.Get("/room-interested-users", interestHandler.ListInterestedUsers)

	// Participant counter
	app.Get("/room-participants", roomHandler.GetParticipants)
	app.Post("/room-participants", roomHandler.UpdateParticipants)

	// Conferencing widget handshake
	app.Get("/connection-details", roomHandler.ConnectionDetails)

	// Quiz (session-authenticated)
	app.Post("/quiz/submit", middleware.Session(cfg.Session.JWTSecret), quizHandler.Submit)

	return app
}
