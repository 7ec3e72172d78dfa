package modules

import (
	"fmt"
	"time"

	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/transactions"
)

type WelfareDisbursement struct {
	ApplicationID string
	Beneficiary   string
	Purpose       string
	Amount        int64
	Method        transactions.PaymentMethod
	RequestedBy   string
	Date          time.Time
}

func WelfarePayment(w WelfareDisbursement) transactions.Input {
	return transactions.Input{
		Date:        w.Date,
		Direction:   transactions.DirectionExpense,
		Category:    "Welfare",
		Subcategory: w.Purpose,
		Description: fmt.Sprintf("Welfare disbursement to %s: %s", w.Beneficiary, w.Purpose),
		Amount:      w.Amount,
		Method:      w.Method,
		Module:      transactions.ModuleWelfare,
		ModuleRef:   w.ApplicationID,
		CreatedBy:   w.RequestedBy,
		RequestedBy: w.RequestedBy,
	}
}
