package api

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"vocably.app/internal/domain"
)

// CommunityHandler serves the community membership endpoints.
type CommunityHandler struct {
	communitySvc domain.CommunityService
}

func NewCommunityHandler(communitySvc domain.CommunityService) *CommunityHandler {
	return &CommunityHandler{communitySvc: communitySvc}
}

type membershipRequest struct {
	Action    string `json:"action"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	UserImage string `json:"userImage"`
}

// SetMembership joins or leaves the community.
// POST /community-members
func (h *CommunityHandler) SetMembership(c *fiber.Ctx) error {
	if h.communitySvc == nil {
		return notConfigured(c)
	}

	var req membershipRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.UserID == "" {
		return badRequest(c, "Missing userId")
	}
	action := domain.MembershipAction(req.Action)
	if action != domain.MemberJoin && action != domain.MemberLeave {
		return badRequest(c, "Missing or invalid action")
	}

	state, err := h.communitySvc.SetMembership(context.Background(), req.UserID, action, domain.UserMeta{
		Name:  req.UserName,
		Email: req.UserEmail,
		Image: req.UserImage,
	})
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"members": state.MemberCount,
		"joined":  state.Joined,
	})
}

// GetMembership reports the member count and the caller's flag.
// GET /community-members?userId=...
func (h *CommunityHandler) GetMembership(c *fiber.Ctx) error {
	if h.communitySvc == nil {
		return notConfigured(c)
	}

	state, err := h.communitySvc.GetMembership(context.Background(), c.Query("userId"))
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"members": state.MemberCount,
		"joined":  state.Joined,
	})
}
