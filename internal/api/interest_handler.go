package api

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"vocably.app/internal/domain"
)

// InterestHandler serves the room-interest endpoints.
type InterestHandler struct {
	interestSvc domain.InterestService
}

func NewInterestHandler(interestSvc domain.InterestService) *InterestHandler {
	return &InterestHandler{interestSvc: interestSvc}
}

type interestRequest struct {
	RoomID     string `json:"roomId"`
	Interested *bool  `json:"interested"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	UserEmail  string `json:"userEmail"`
	UserImage  string `json:"userImage"`
}

type interestedUser struct {
	UserID   string    `json:"userId"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Image    string    `json:"image"`
	JoinedAt time.Time `json:"joinedAt"`
}

// SetInterest toggles the caller's interest mark for a room.
// POST /room-interest
func (h *InterestHandler) SetInterest(c *fiber.Ctx) error {
	if h.interestSvc == nil {
		return notConfigured(c)
	}

	var req interestRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid payload")
	}
	if req.RoomID == "" || req.UserID == "" || req.Interested == nil {
		return badRequest(c, "Invalid payload")
	}

	state, err := h.interestSvc.SetInterest(context.Background(), req.RoomID, req.UserID, *req.Interested, domain.UserMeta{
		Name:  req.UserName,
		Email: req.UserEmail,
		Image: req.UserImage,
	})
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"ok":               true,
		"persisted":        true,
		"interested_count": state.InterestedCount,
		"user_interested":  state.UserInterested,
	})
}

// ListInterestedUsers lists a room's interested users, oldest first.
// GET /room-interested-users?roomId=...
func (h *InterestHandler) ListInterestedUsers(c *fiber.Ctx) error {
	if h.interestSvc == nil {
		return notConfigured(c)
	}

	roomID := c.Query("roomId")
	if roomID == "" {
		return badRequest(c, "Missing roomId")
	}

	rows, err := h.interestSvc.ListInterestedUsers(context.Background(), roomID)
	if err != nil {
		return handleError(c, err)
	}

	interests := make([]interestedUser, 0, len(rows))
	for _, row := range rows {
		interests = append(interests, interestedUser{
			UserID:   row.UserID,
			Name:     row.UserName,
			Email:    row.UserEmail,
			Image:    row.UserImage,
			JoinedAt: row.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"interests": interests,
		"count":     len(interests),
	})
}
