package modules

import (
	"fmt"
	"time"

	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/transactions"
)

type EventCost struct {
	EventID     string
	EventName   string
	Item        string
	Amount      int64
	Method      transactions.PaymentMethod
	RequestedBy string
	Date        time.Time
}

func EventExpense(e EventCost) transactions.Input {
	return transactions.Input{
		Date:        e.Date,
		Direction:   transactions.DirectionExpense,
		Category:    "Events",
		Subcategory: e.EventName,
		Description: fmt.Sprintf("%s expense for %s", e.Item, e.EventName),
		Amount:      e.Amount,
		Method:      e.Method,
		Module:      transactions.ModuleEvents,
		ModuleRef:   e.EventID,
		CreatedBy:   e.RequestedBy,
		RequestedBy: e.RequestedBy,
	}
}
