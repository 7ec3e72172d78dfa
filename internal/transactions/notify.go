package transactions

import (
	"context"
	"time"
)

type NotificationType string

const (
	NotificationApprovalRequired NotificationType = "approval_required"
	NotificationApproved         NotificationType = "transaction_approved"
	NotificationRejected         NotificationType = "transaction_rejected"
)

// Notification is the structured event delivered to notification
// subscribers on approval-gate activity.
type Notification struct {
	ID            string           `json:"id"`
	Type          NotificationType `json:"type"`
	Title         string           `json:"title"`
	Message       string           `json:"message"`
	Amount        int64            `json:"amount,omitempty"`
	Module        Module           `json:"module,omitempty"`
	TransactionID int64            `json:"transaction_id"`
	Timestamp     time.Time        `json:"timestamp"`
}

// Notifier receives store mutations. Delivery is synchronous and
// best-effort: a subscriber registered after an event never sees it.
type Notifier interface {
	TransactionsChanged(txs []Transaction)
	PendingCountChanged(count int)
	Notify(n Notification)
}

// LogEntry is one row of the append-only status history.
type LogEntry struct {
	Event         string    `json:"event"`
	TransactionID int64     `json:"transaction_id"`
	Actor         string    `json:"actor,omitempty"`
	FromStatus    Status    `json:"from_status,omitempty"`
	ToStatus      Status    `json:"to_status,omitempty"`
	Amount        int64     `json:"amount"`
	Module        Module    `json:"module"`
	Notes         string    `json:"notes,omitempty"`
	At            time.Time `json:"at"`
}

// Recorder persists lifecycle events. Implementations are best-effort;
// the store never fails a write because recording failed.
type Recorder interface {
	Record(ctx context.Context, e LogEntry)
}
