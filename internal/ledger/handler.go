package ledger

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	Recorder *Recorder
}

func NewHandler(rec *Recorder) *Handler {
	return &Handler{Recorder: rec}
}

// History serves the audit trail of one transaction.
func (h *Handler) History(c *fiber.Ctx) error {
	if h.Recorder == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "ledger is not configured"})
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	entries, err := h.Recorder.History(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load history: " + err.Error()})
	}

	return c.JSON(fiber.Map{"items": entries})
}
