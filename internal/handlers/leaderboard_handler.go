package handlers

import (
	"github.com/akaya/fightpicks/internal/dto"
	"github.com/akaya/fightpicks/internal/services"
	"github.com/gofiber/fiber/v2"
)

type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

func (h *LeaderboardHandler) Standings(c *fiber.Ctx) error {
	entries, err := h.leaderboardService.Standings(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load leaderboard",
		})
	}
	return c.JSON(dto.LeaderboardResponse{Entries: entries})
}
