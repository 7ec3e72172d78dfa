package offerings

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	Aggregator *Aggregator
}

func NewHandler(agg *Aggregator) *Handler {
	return &Handler{Aggregator: agg}
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var in Input
	if err := c.BodyParser(&in); err != nil {
		return jsonErr(c, fiber.StatusBadRequest, "invalid body")
	}
	in.ServiceType = strings.TrimSpace(in.ServiceType)

	off, err := h.Aggregator.Add(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, ErrServiceTypeRequired) || errors.Is(err, ErrNoAmounts) {
			return jsonErr(c, fiber.StatusBadRequest, err.Error())
		}
		return jsonErr(c, fiber.StatusInternalServerError, "failed to record offering: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(off)
}

func (h *Handler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"items": h.Aggregator.Offerings()})
}

func jsonErr(c *fiber.Ctx, code int, msg string) error {
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
