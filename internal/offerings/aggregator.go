package offerings

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/transactions"
)

// Aggregator records offerings and synthesizes the matching income
// transaction. One submission always produces exactly one transaction.
type Aggregator struct {
	mu        sync.Mutex
	nextID    int64
	offerings []Offering
	store     *transactions.Store
	log       zerolog.Logger
}

func NewAggregator(store *transactions.Store, log zerolog.Logger) *Aggregator {
	return &Aggregator{nextID: 1, store: store, log: log}
}

// Add derives the total from the sub-amounts, inserts the income
// transaction (category "Offerings") and stores the offering itself.
func (a *Aggregator) Add(ctx context.Context, in Input) (Offering, error) {
	if err := in.Validate(); err != nil {
		return Offering{}, err
	}

	now := time.Now().UTC()
	date := in.Date
	if date.IsZero() {
		date = now
	}

	tx, err := a.store.AddTransaction(ctx, transactions.Input{
		Date:        date,
		Direction:   transactions.DirectionIncome,
		Category:    transactions.CategoryOfferings,
		Subcategory: in.ServiceType,
		Description: fmt.Sprintf("%s offering collection", in.ServiceType),
		Amount:      in.Amounts.Total(),
		Method:      transactions.MethodCash,
		Module:      transactions.ModuleFinance,
		CreatedBy:   in.Collector,
		RequestedBy: in.Collector,
	})
	if err != nil {
		return Offering{}, err
	}

	off := Offering{
		Date:          date,
		ServiceType:   in.ServiceType,
		Minister:      in.Minister,
		Amounts:       in.Amounts,
		Total:         in.Amounts.Total(),
		Collector:     in.Collector,
		Counters:      append([]string(nil), in.Counters...),
		Banking:       in.Banking,
		TransactionID: tx.ID,
		CreatedAt:     now,
	}

	a.mu.Lock()
	off.ID = a.nextID
	a.nextID++
	a.offerings = append(a.offerings, off)
	a.mu.Unlock()

	a.log.Info().
		Int64("offering_id", off.ID).
		Int64("transaction_id", tx.ID).
		Int64("total", off.Total).
		Str("service_type", off.ServiceType).
		Msg("offering recorded")

	return off, nil
}

// Offerings returns a copy of every recorded offering.
func (a *Aggregator) Offerings() []Offering {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Offering, len(a.offerings))
	copy(out, a.offerings)
	for i := range out {
		out[i].Counters = append([]string(nil), a.offerings[i].Counters...)
	}
	return out
}
