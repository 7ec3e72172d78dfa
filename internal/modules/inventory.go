// Package modules contains the adapter constructors that map each
// subsystem's domain events into the transaction input the store expects.
// Adapters are pure data shaping: no I/O, no hidden state, and no
// approval checks of their own (the store's gate is the only policy).
package modules

import (
	"fmt"
	"time"

	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/transactions"
)

type Purchase struct {
	ItemName    string
	Supplier    string
	Amount      int64
	Method      transactions.PaymentMethod
	ItemRef     string
	RequestedBy string
	Date        time.Time
}

func InventoryPurchase(p Purchase) transactions.Input {
	return transactions.Input{
		Date:        p.Date,
		Direction:   transactions.DirectionExpense,
		Category:    "Inventory Purchase",
		Subcategory: p.ItemName,
		Description: fmt.Sprintf("Purchase of %s from %s", p.ItemName, p.Supplier),
		Amount:      p.Amount,
		Method:      p.Method,
		Module:      transactions.ModuleInventory,
		ModuleRef:   p.ItemRef,
		CreatedBy:   p.RequestedBy,
		RequestedBy: p.RequestedBy,
	}
}

type Maintenance struct {
	ItemName    string
	Details     string
	Amount      int64
	Method      transactions.PaymentMethod
	ItemRef     string
	RequestedBy string
	Date        time.Time
}

func InventoryMaintenance(m Maintenance) transactions.Input {
	return transactions.Input{
		Date:        m.Date,
		Direction:   transactions.DirectionExpense,
		Category:    "Equipment Maintenance",
		Subcategory: m.ItemName,
		Description: fmt.Sprintf("Maintenance of %s: %s", m.ItemName, m.Details),
		Amount:      m.Amount,
		Method:      m.Method,
		Module:      transactions.ModuleInventory,
		ModuleRef:   m.ItemRef,
		CreatedBy:   m.RequestedBy,
		RequestedBy: m.RequestedBy,
	}
}
