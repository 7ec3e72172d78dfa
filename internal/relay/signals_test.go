package relay

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/money"
	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/transactions"
)

type mockBroadcaster struct {
	mu      sync.Mutex
	signals []Signal
	err     error
}

func (m *mockBroadcaster) Publish(_ context.Context, s Signal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.signals = append(m.signals, s)
	return nil
}

func (m *mockBroadcaster) Close() error { return nil }

func wireStore(b Broadcaster) (*transactions.Store, *Relay) {
	rel := New(zerolog.Nop())
	store := transactions.NewStore(rel, nil, zerolog.Nop())
	NewSignaler(store, b, zerolog.Nop()).Attach(rel)
	return store, rel
}

func pendingWelfare(t *testing.T, store *transactions.Store) transactions.Transaction {
	t.Helper()
	tx, err := store.AddTransaction(context.Background(), transactions.Input{
		Direction:   transactions.DirectionExpense,
		Category:    "Welfare",
		Description: "Welfare disbursement to M. Odhiambo",
		Amount:      20_000 * money.CentsPerUnit,
		Method:      transactions.MethodMobileMoney,
		Module:      transactions.ModuleWelfare,
		ModuleRef:   "WEL-23",
		RequestedBy: "welfare-officer",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	return tx
}

func TestSignalerPublishesOnApproval(t *testing.T) {
	b := &mockBroadcaster{}
	store, _ := wireStore(b)

	tx := pendingWelfare(t, store)
	if !store.ApproveTransaction(context.Background(), tx.ID, "Finance Manager") {
		t.Fatal("approve failed")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.signals) != 1 {
		t.Fatalf("signals = %d, want 1", len(b.signals))
	}
	s := b.signals[0]
	if s.Topic != TopicWelfareCompleted {
		t.Errorf("topic = %q, want %q", s.Topic, TopicWelfareCompleted)
	}
	if s.TransactionID != tx.ID || s.ModuleRef != "WEL-23" {
		t.Errorf("signal correlation: id=%d ref=%q", s.TransactionID, s.ModuleRef)
	}
	if s.Status != string(transactions.StatusApproved) {
		t.Errorf("status = %q, want Approved", s.Status)
	}
	if s.Actor != "Finance Manager" {
		t.Errorf("actor = %q, want Finance Manager", s.Actor)
	}
}

func TestSignalerPublishesOnRejection(t *testing.T) {
	b := &mockBroadcaster{}
	store, _ := wireStore(b)

	tx := pendingWelfare(t, store)
	if !store.RejectTransaction(context.Background(), tx.ID, "Finance Manager", "insufficient documentation") {
		t.Fatal("reject failed")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.signals) != 1 || b.signals[0].Status != string(transactions.StatusRejected) {
		t.Fatalf("expected one rejected signal, got %v", b.signals)
	}
}

func TestSignalerIgnoresApprovalRequired(t *testing.T) {
	b := &mockBroadcaster{}
	store, _ := wireStore(b)

	pendingWelfare(t, store)

	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.signals) != 0 {
		t.Fatalf("approval_required must not publish cross-module signals, got %v", b.signals)
	}
}

func TestSignalerTopicRouting(t *testing.T) {
	cases := []struct {
		module transactions.Module
		topic  string
	}{
		{transactions.ModuleWelfare, TopicWelfareCompleted},
		{transactions.ModuleInventory, TopicLPOApproved},
		{transactions.ModuleHR, TopicHRDisbursement},
		{transactions.ModuleEvents, TopicEventSettled},
	}

	for _, tc := range cases {
		if got := topicFor(tc.module); got != tc.topic {
			t.Errorf("topicFor(%s) = %q, want %q", tc.module, got, tc.topic)
		}
	}
	if got := topicFor(transactions.ModuleFinance); got != "" {
		t.Errorf("finance transactions have no cross-module topic, got %q", got)
	}
}

func TestSignalerPublishFailureDoesNotAffectApproval(t *testing.T) {
	b := &mockBroadcaster{err: errors.New("broker unavailable")}
	store, _ := wireStore(b)

	tx := pendingWelfare(t, store)
	if !store.ApproveTransaction(context.Background(), tx.ID, "Finance Manager") {
		t.Fatal("approve must succeed even when the broadcast fails")
	}

	got, _ := store.TransactionByID(tx.ID)
	if got.Status != transactions.StatusApproved {
		t.Errorf("status = %s, want Approved", got.Status)
	}
}
