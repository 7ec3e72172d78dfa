package modules

import (
	"fmt"
	"time"

	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/transactions"
)

type Payroll struct {
	EmployeeName string
	EmployeeID   string
	Period       string // e.g. "2026-08"
	NetPay       int64
	Method       transactions.PaymentMethod
	PreparedBy   string
	Date         time.Time
}

func PayrollPayment(p Payroll) transactions.Input {
	return transactions.Input{
		Date:        p.Date,
		Direction:   transactions.DirectionExpense,
		Category:    "Payroll",
		Subcategory: p.Period,
		Description: fmt.Sprintf("Salary payment for %s (%s)", p.EmployeeName, p.Period),
		Amount:      p.NetPay,
		Method:      p.Method,
		Module:      transactions.ModuleHR,
		ModuleRef:   p.EmployeeID,
		CreatedBy:   p.PreparedBy,
		RequestedBy: p.PreparedBy,
	}
}

// PayrollBatch maps a payroll run to one transaction per employee.
func PayrollBatch(entries []Payroll) []transactions.Input {
	out := make([]transactions.Input, 0, len(entries))
	for _, p := range entries {
		out = append(out, PayrollPayment(p))
	}
	return out
}
