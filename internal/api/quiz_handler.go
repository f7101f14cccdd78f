package api

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"vocably.app/internal/domain"
)

// QuizHandler serves the session-authenticated quiz submission
// endpoint.
type QuizHandler struct {
	quizSvc domain.QuizService
}

func NewQuizHandler(quizSvc domain.QuizService) *QuizHandler {
	return &QuizHandler{quizSvc: quizSvc}
}

type quizRequest struct {
	Score int `json:"score"`
}

// Submit records the caller's quiz score. One submission per user.
// POST /quiz/submit
func (h *QuizHandler) Submit(c *fiber.Ctx) error {
	userID, _ := c.Locals("id").(string)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	var req quizRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.quizSvc.Submit(context.Background(), userID, req.Score); err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}
