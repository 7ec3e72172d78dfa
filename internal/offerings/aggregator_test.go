package offerings

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/transactions"
)

func newAggregator() (*Aggregator, *transactions.Store) {
	store := transactions.NewStore(nil, nil, zerolog.Nop())
	return NewAggregator(store, zerolog.Nop()), store
}

func sampleInput() Input {
	return Input{
		Date:        time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		ServiceType: "Sunday Service",
		Minister:    "Rev. Otieno",
		Amounts: Amounts{
			Tithe:           120_000,
			SpecialOffering: 30_000,
			Thanksgiving:    15_000,
			BuildingFund:    40_000,
			Missions:        10_000,
			Welfare:         8_000,
			Youth:           5_000,
			Others:          2_000,
		},
		Collector: "J. Wanjiru",
		Counters:  []string{"A. Kamau", "B. Njeri"},
	}
}

func TestAddOffering_SynthesizesOneIncomeTransaction(t *testing.T) {
	agg, store := newAggregator()

	in := sampleInput()
	wantTotal := in.Amounts.Total()

	off, err := agg.Add(context.Background(), in)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if off.Total != wantTotal {
		t.Errorf("offering total = %d, want %d", off.Total, wantTotal)
	}

	all := store.Transactions()
	if len(all) != 1 {
		t.Fatalf("expected exactly one transaction, got %d", len(all))
	}
	tx := all[0]
	if tx.ID != off.TransactionID {
		t.Errorf("offering references transaction %d, store has %d", off.TransactionID, tx.ID)
	}
	if tx.Direction != transactions.DirectionIncome {
		t.Errorf("direction = %s, want Income", tx.Direction)
	}
	if tx.Category != transactions.CategoryOfferings {
		t.Errorf("category = %q, want %q", tx.Category, transactions.CategoryOfferings)
	}
	if tx.Amount != wantTotal {
		t.Errorf("amount = %d, want %d", tx.Amount, wantTotal)
	}
	if tx.Module != transactions.ModuleFinance {
		t.Errorf("module = %s, want Finance", tx.Module)
	}
	// Finance income never waits for approval.
	if tx.Status != transactions.StatusCompleted {
		t.Errorf("status = %s, want Completed", tx.Status)
	}
}

func TestAddOffering_BankingMetadataPassesThrough(t *testing.T) {
	agg, _ := newAggregator()

	in := sampleInput()
	in.Banking = &Banking{
		BankName:    "Equity Bank",
		DepositDate: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		DepositRef:  "DEP-4471",
	}

	off, err := agg.Add(context.Background(), in)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if off.Banking == nil || off.Banking.DepositRef != "DEP-4471" {
		t.Errorf("banking metadata lost: %+v", off.Banking)
	}
}

func TestAddOffering_Validation(t *testing.T) {
	agg, store := newAggregator()

	in := sampleInput()
	in.ServiceType = ""
	if _, err := agg.Add(context.Background(), in); err == nil {
		t.Fatal("expected error for missing service type")
	}

	in = sampleInput()
	in.Amounts = Amounts{}
	if _, err := agg.Add(context.Background(), in); err == nil {
		t.Fatal("expected error for zero amounts")
	}

	if len(store.Transactions()) != 0 {
		t.Error("invalid offering must not produce a transaction")
	}
	if len(agg.Offerings()) != 0 {
		t.Error("invalid offering must not be stored")
	}
}

func TestOfferingsReturnsCopies(t *testing.T) {
	agg, _ := newAggregator()

	if _, err := agg.Add(context.Background(), sampleInput()); err != nil {
		t.Fatalf("add: %v", err)
	}

	list := agg.Offerings()
	list[0].Minister = "mutated"
	list[0].Counters[0] = "mutated"

	fresh := agg.Offerings()
	if fresh[0].Minister == "mutated" || fresh[0].Counters[0] == "mutated" {
		t.Error("external mutation leaked into aggregator state")
	}
}

func TestAmountsTotal(t *testing.T) {
	a := Amounts{Tithe: 1, SpecialOffering: 2, Thanksgiving: 3, BuildingFund: 4, Missions: 5, Welfare: 6, Youth: 7, Others: 8}
	if a.Total() != 36 {
		t.Fatalf("total = %d, want 36", a.Total())
	}
}
