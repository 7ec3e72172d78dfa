package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/transactions"
)

type Handler struct {
	Store *transactions.Store
}

func NewHandler(store *transactions.Store) *Handler {
	return &Handler{Store: store}
}

type StatsResponse struct {
	TransactionsTotal int                        `json:"transactions_total"`
	PendingApprovals  int                        `json:"pending_approvals"`
	ByModule          map[string]int             `json:"by_module"`
	ByStatus          map[string]int             `json:"by_status"`
	Summary           transactions.Summary       `json:"summary"`
	Pending           []transactions.Transaction `json:"pending"`
}

// Stats is the reviewer-facing operational overview: totals, the pending
// queue and per-module/per-status counts.
func (h *Handler) Stats(c *fiber.Ctx) error {
	all := h.Store.Transactions()

	byModule := make(map[string]int)
	byStatus := make(map[string]int)
	for _, tx := range all {
		byModule[string(tx.Module)]++
		byStatus[string(tx.Status)]++
	}

	return c.JSON(StatsResponse{
		TransactionsTotal: len(all),
		PendingApprovals:  h.Store.PendingCount(),
		ByModule:          byModule,
		ByStatus:          byStatus,
		Summary:           h.Store.FinancialSummary(nil, nil),
		Pending:           h.Store.PendingTransactions(),
	})
}
