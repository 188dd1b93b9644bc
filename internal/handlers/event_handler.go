package handlers

import (
	"github.com/akaya/fightpicks/internal/catalog"
	"github.com/akaya/fightpicks/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type EventHandler struct{}

func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

func (h *EventHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"events": catalog.Events()})
}

func (h *EventHandler) Get(c *fiber.Ctx) error {
	event, ok := catalog.Get(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Event not found",
		})
	}
	return c.JSON(event)
}
