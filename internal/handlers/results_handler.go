package handlers

import (
	"errors"

	"github.com/akaya/fightpicks/internal/dto"
	"github.com/akaya/fightpicks/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ResultsHandler struct {
	scoringService *services.ScoringService
}

func NewResultsHandler(scoringService *services.ScoringService) *ResultsHandler {
	return &ResultsHandler{scoringService: scoringService}
}

// Record takes the winners for a card and runs the settlement pass.
func (h *ResultsHandler) Record(c *fiber.Ctx) error {
	var req dto.RecordResultRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.scoringService.RecordResult(c.Context(), c.Params("eventID"), &req)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrResultExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(resp)
}
