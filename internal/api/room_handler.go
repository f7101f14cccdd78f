package api

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"vocably.app/internal/domain"
)

// RoomHandler serves the participant-count endpoints.
type RoomHandler struct {
	roomSvc domain.RoomService
}

func NewRoomHandler(roomSvc domain.RoomService) *RoomHandler {
	return &RoomHandler{roomSvc: roomSvc}
}

type participantsRequest struct {
	RoomID string `json:"roomId"`
	Action string `json:"action"`
	Count  *int   `json:"count"`
}

// GetParticipants returns the cached counts for rooms touched since
// process start.
// GET /room-participants
func (h *RoomHandler) GetParticipants(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"rooms": h.roomSvc.Participants()})
}

// UpdateParticipants applies a join/leave/set action to a room's live
// count.
// POST /room-participants
func (h *RoomHandler) UpdateParticipants(c *fiber.Ctx) error {
	var req participantsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request")
	}
	if req.RoomID == "" {
		return badRequest(c, "Invalid request")
	}

	action := domain.ParticipantAction(req.Action)
	switch action {
	case domain.ActionJoin, domain.ActionLeave:
	case domain.ActionSet:
		if req.Count == nil {
			return badRequest(c, "Invalid request")
		}
	default:
		return badRequest(c, "Invalid request")
	}

	count := 0
	if req.Count != nil {
		count = *req.Count
	}

	participants, err := h.roomSvc.UpdateParticipants(context.Background(), req.RoomID, action, count)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"participants": participants,
	})
}

// ConnectionDetails resolves the room name the embedded conferencing
// widget joins with. No token exchange happens here.
// GET /connection-details?roomId=...&participantName=...
func (h *RoomHandler) ConnectionDetails(c *fiber.Ctx) error {
	roomID := c.Query("roomId")
	participantName := c.Query("participantName")
	if roomID == "" || participantName == "" {
		return badRequest(c, "Missing roomId or participantName")
	}

	room, err := h.roomSvc.GetRoom(context.Background(), roomID)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"roomName":        room.Name,
		"participantName": participantName,
	})
}
