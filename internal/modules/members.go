package modules

import (
	"fmt"
	"time"

	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/transactions"
)

type Contribution struct {
	MemberID   string
	MemberName string
	Purpose    string // e.g. "Building Fund", "Missions"
	Amount     int64
	Method     transactions.PaymentMethod
	RecordedBy string
	Date       time.Time
}

func MemberContribution(c Contribution) transactions.Input {
	return transactions.Input{
		Date:        c.Date,
		Direction:   transactions.DirectionIncome,
		Category:    "Contributions",
		Subcategory: c.Purpose,
		Description: fmt.Sprintf("%s contribution from %s", c.Purpose, c.MemberName),
		Amount:      c.Amount,
		Method:      c.Method,
		Module:      transactions.ModuleFinance,
		ModuleRef:   c.MemberID,
		CreatedBy:   c.RecordedBy,
		RequestedBy: c.RecordedBy,
	}
}

type Fee struct {
	Service    string // e.g. "Wedding", "Certificate"
	PayerName  string
	Amount     int64
	Method     transactions.PaymentMethod
	RecordedBy string
	Date       time.Time
}

// ServiceFee records a generic fee paid for a church service.
func ServiceFee(f Fee) transactions.Input {
	return transactions.Input{
		Date:        f.Date,
		Direction:   transactions.DirectionIncome,
		Category:    "Service Fees",
		Subcategory: f.Service,
		Description: fmt.Sprintf("%s fee from %s", f.Service, f.PayerName),
		Amount:      f.Amount,
		Method:      f.Method,
		Module:      transactions.ModuleFinance,
		ModuleRef:   f.PayerName,
		CreatedBy:   f.RecordedBy,
		RequestedBy: f.RecordedBy,
	}
}
