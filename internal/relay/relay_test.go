package relay

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/transactions"
)

func TestRelayFanOut(t *testing.T) {
	r := New(zerolog.Nop())

	var gotSnapshots int
	var gotCounts []int
	var gotNotes []transactions.Notification

	r.SubscribeTransactions(func(txs []transactions.Transaction) { gotSnapshots++ })
	r.SubscribePendingCount(func(n int) { gotCounts = append(gotCounts, n) })
	r.SubscribeNotifications(func(n transactions.Notification) { gotNotes = append(gotNotes, n) })

	r.TransactionsChanged([]transactions.Transaction{{ID: 1}})
	r.PendingCountChanged(3)
	r.Notify(transactions.Notification{
		ID:            "n-1",
		Type:          transactions.NotificationApprovalRequired,
		TransactionID: 1,
		Timestamp:     time.Now(),
	})

	if gotSnapshots != 1 {
		t.Errorf("snapshot deliveries = %d, want 1", gotSnapshots)
	}
	if len(gotCounts) != 1 || gotCounts[0] != 3 {
		t.Errorf("pending counts = %v, want [3]", gotCounts)
	}
	if len(gotNotes) != 1 || gotNotes[0].Type != transactions.NotificationApprovalRequired {
		t.Errorf("notifications = %v", gotNotes)
	}
}

func TestRelayUnsubscribe(t *testing.T) {
	r := New(zerolog.Nop())

	calls := 0
	unsub := r.SubscribeNotifications(func(transactions.Notification) { calls++ })

	r.Notify(transactions.Notification{ID: "a"})
	unsub()
	r.Notify(transactions.Notification{ID: "b"})

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestRelayLateSubscriberMissesEvents(t *testing.T) {
	r := New(zerolog.Nop())

	r.Notify(transactions.Notification{ID: "before"})

	var got []string
	r.SubscribeNotifications(func(n transactions.Notification) { got = append(got, n.ID) })
	r.Notify(transactions.Notification{ID: "after"})

	if len(got) != 1 || got[0] != "after" {
		t.Fatalf("late subscriber saw %v, want only [after]", got)
	}
}

func TestInProcessBroadcaster(t *testing.T) {
	b := NewInProcessBroadcaster()

	var got []Signal
	b.Subscribe(TopicWelfareCompleted, func(s Signal) { got = append(got, s) })

	err := b.Publish(context.Background(), Signal{
		Topic:         TopicWelfareCompleted,
		TransactionID: 7,
		ModuleRef:     "WEL-1",
		Status:        "Approved",
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	// A different topic is not delivered here.
	if err := b.Publish(context.Background(), Signal{Topic: TopicHRDisbursement}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(got) != 1 || got[0].TransactionID != 7 {
		t.Fatalf("got %v, want one welfare signal for transaction 7", got)
	}
}
