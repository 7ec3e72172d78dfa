package transactions

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/metrics"
)

type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

type approveRequest struct {
	ApprovedBy string `json:"approved_by"`
}

type rejectRequest struct {
	RejectedBy string `json:"rejected_by"`
	Reason     string `json:"reason"`
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var in Input
	if err := c.BodyParser(&in); err != nil {
		return jsonErr(c, fiber.StatusBadRequest, "invalid body")
	}
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)

	tx, err := h.Store.AddTransaction(c.UserContext(), in)
	if err != nil {
		if isValidationErr(err) {
			return jsonErr(c, fiber.StatusBadRequest, err.Error())
		}
		return jsonErr(c, fiber.StatusInternalServerError, "failed to record transaction: "+err.Error())
	}

	metrics.TransactionsCreated.WithLabelValues(string(tx.Module)).Inc()
	return c.Status(fiber.StatusCreated).JSON(tx)
}

func (h *Handler) List(c *fiber.Ctx) error {
	items := h.Store.Transactions()

	if m := strings.TrimSpace(c.Query("module")); m != "" {
		items = keep(items, func(tx Transaction) bool { return tx.Module == Module(m) })
	}
	if t := strings.TrimSpace(c.Query("type")); t != "" {
		items = keep(items, func(tx Transaction) bool { return tx.Direction == Direction(t) })
	}
	from, to, err := parseRange(c)
	if err != nil {
		return jsonErr(c, fiber.StatusBadRequest, err.Error())
	}
	if from != nil || to != nil {
		items = keep(items, func(tx Transaction) bool { return inRange(tx.Date, from, to) })
	}

	return c.JSON(fiber.Map{"items": items})
}

func (h *Handler) Pending(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"items": h.Store.PendingTransactions()})
}

func (h *Handler) Approve(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return jsonErr(c, fiber.StatusBadRequest, "invalid id")
	}

	var body approveRequest
	if err := c.BodyParser(&body); err != nil {
		return jsonErr(c, fiber.StatusBadRequest, "invalid body")
	}
	body.ApprovedBy = strings.TrimSpace(body.ApprovedBy)
	if body.ApprovedBy == "" {
		return jsonErr(c, fiber.StatusBadRequest, "approved_by required")
	}

	if _, ok := h.Store.TransactionByID(id); !ok {
		return jsonErr(c, fiber.StatusNotFound, "transaction not found")
	}
	if !h.Store.ApproveTransaction(c.UserContext(), id, body.ApprovedBy) {
		return jsonErr(c, fiber.StatusConflict, "transaction is not pending")
	}

	metrics.TransactionsApproved.Inc()
	tx, _ := h.Store.TransactionByID(id)
	return c.JSON(tx)
}

func (h *Handler) Reject(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return jsonErr(c, fiber.StatusBadRequest, "invalid id")
	}

	var body rejectRequest
	if err := c.BodyParser(&body); err != nil {
		return jsonErr(c, fiber.StatusBadRequest, "invalid body")
	}
	body.RejectedBy = strings.TrimSpace(body.RejectedBy)
	if body.RejectedBy == "" {
		return jsonErr(c, fiber.StatusBadRequest, "rejected_by required")
	}

	if _, ok := h.Store.TransactionByID(id); !ok {
		return jsonErr(c, fiber.StatusNotFound, "transaction not found")
	}
	if !h.Store.RejectTransaction(c.UserContext(), id, body.RejectedBy, strings.TrimSpace(body.Reason)) {
		return jsonErr(c, fiber.StatusConflict, "transaction is not pending")
	}

	metrics.TransactionsRejected.Inc()
	tx, _ := h.Store.TransactionByID(id)
	return c.JSON(tx)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return jsonErr(c, fiber.StatusBadRequest, "invalid id")
	}
	if !h.Store.DeleteTransaction(c.UserContext(), id) {
		return jsonErr(c, fiber.StatusNotFound, "transaction not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) Summary(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return jsonErr(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(h.Store.FinancialSummary(from, to))
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func parseRange(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if v := strings.TrimSpace(c.Query("from")); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, nil, errors.New("from must be YYYY-MM-DD")
		}
		from = &d
	}
	if v := strings.TrimSpace(c.Query("to")); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, nil, errors.New("to must be YYYY-MM-DD")
		}
		// inclusive end of day
		d = d.Add(24*time.Hour - time.Nanosecond)
		to = &d
	}
	return from, to, nil
}

func keep(items []Transaction, fn func(Transaction) bool) []Transaction {
	out := make([]Transaction, 0, len(items))
	for _, tx := range items {
		if fn(tx) {
			out = append(out, tx)
		}
	}
	return out
}

func isValidationErr(err error) bool {
	for _, v := range []error{
		ErrAmountMustBePositive,
		ErrDescriptionRequired,
		ErrCategoryRequired,
		ErrInvalidDirection,
		ErrInvalidModule,
		ErrInvalidMethod,
		ErrInvalidStatus,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

func jsonErr(c *fiber.Ctx, code int, msg string) error {
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
