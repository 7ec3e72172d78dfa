package offerings

import (
	"errors"
	"time"
)

var (
	ErrServiceTypeRequired = errors.New("service_type is required")
	ErrNoAmounts           = errors.New("offering amounts must sum to more than zero")
)

// Amounts is the fixed set of named offering sub-amounts, in cents.
type Amounts struct {
	Tithe           int64 `json:"tithe"`
	SpecialOffering int64 `json:"special_offering"`
	Thanksgiving    int64 `json:"thanksgiving"`
	BuildingFund    int64 `json:"building_fund"`
	Missions        int64 `json:"missions"`
	Welfare         int64 `json:"welfare"`
	Youth           int64 `json:"youth"`
	Others          int64 `json:"others"`
}

// Total is the only way the offering total is produced; it is never
// independently settable.
func (a Amounts) Total() int64 {
	return a.Tithe + a.SpecialOffering + a.Thanksgiving + a.BuildingFund +
		a.Missions + a.Welfare + a.Youth + a.Others
}

// Banking holds optional deposit metadata for a counted offering.
type Banking struct {
	BankName    string    `json:"bank_name"`
	DepositDate time.Time `json:"deposit_date"`
	DepositRef  string    `json:"deposit_ref"`
}

// Offering is a service-collection summary. Each one maps to exactly one
// synthesized income transaction, referenced by TransactionID.
type Offering struct {
	ID            int64     `json:"id"`
	Date          time.Time `json:"date"`
	ServiceType   string    `json:"service_type"`
	Minister      string    `json:"minister"`
	Amounts       Amounts   `json:"amounts"`
	Total         int64     `json:"total"`
	Collector     string    `json:"collector"`
	Counters      []string  `json:"counters,omitempty"`
	Banking       *Banking  `json:"banking,omitempty"`
	TransactionID int64     `json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// Input is the caller-supplied part of an offering submission.
type Input struct {
	Date        time.Time `json:"date"`
	ServiceType string    `json:"service_type"`
	Minister    string    `json:"minister"`
	Amounts     Amounts   `json:"amounts"`
	Collector   string    `json:"collector"`
	Counters    []string  `json:"counters,omitempty"`
	Banking     *Banking  `json:"banking,omitempty"`
}

func (in Input) Validate() error {
	if in.ServiceType == "" {
		return ErrServiceTypeRequired
	}
	if in.Amounts.Total() <= 0 {
		return ErrNoAmounts
	}
	return nil
}
