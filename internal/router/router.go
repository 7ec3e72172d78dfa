package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/admin"
	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/ledger"
	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/offerings"
	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/transactions"
)

type Router struct {
	TxHandler        *transactions.Handler
	OfferingsHandler *offerings.Handler
	LedgerHandler    *ledger.Handler
	AdminHandler     *admin.Handler
	AdminMW          fiber.Handler
	WriteLimiter     fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	if r.TxHandler != nil {
		if r.WriteLimiter != nil {
			app.Post("/api/transactions", r.WriteLimiter, r.TxHandler.Create)
			app.Post("/api/transactions/:id/approve", r.WriteLimiter, r.TxHandler.Approve)
			app.Post("/api/transactions/:id/reject", r.WriteLimiter, r.TxHandler.Reject)
			app.Delete("/api/transactions/:id", r.WriteLimiter, r.TxHandler.Delete)
		} else {
			app.Post("/api/transactions", r.TxHandler.Create)
			app.Post("/api/transactions/:id/approve", r.TxHandler.Approve)
			app.Post("/api/transactions/:id/reject", r.TxHandler.Reject)
			app.Delete("/api/transactions/:id", r.TxHandler.Delete)
		}
		app.Get("/api/transactions", r.TxHandler.List)
		app.Get("/api/transactions/pending", r.TxHandler.Pending)
		app.Get("/api/summary", r.TxHandler.Summary)
	}

	if r.LedgerHandler != nil {
		app.Get("/api/transactions/:id/history", r.LedgerHandler.History)
	}

	if r.OfferingsHandler != nil {
		if r.WriteLimiter != nil {
			app.Post("/api/offerings", r.WriteLimiter, r.OfferingsHandler.Create)
		} else {
			app.Post("/api/offerings", r.OfferingsHandler.Create)
		}
		app.Get("/api/offerings", r.OfferingsHandler.List)
	}

	if r.AdminHandler != nil && r.AdminMW != nil {
		app.Get("/api/admin/stats", r.AdminMW, r.AdminHandler.Stats)
	}
}
