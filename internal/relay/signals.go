package relay

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/metrics"
	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/transactions"
)

const publishTimeout = 2 * time.Second

// Signaler translates approval outcomes into cross-module topic
// publishes. It is registered with the relay as a post-approval handler;
// the store itself stays effect-free beyond status mutation.
type Signaler struct {
	store       *transactions.Store
	broadcaster Broadcaster
	log         zerolog.Logger
}

func NewSignaler(store *transactions.Store, b Broadcaster, log zerolog.Logger) *Signaler {
	return &Signaler{store: store, broadcaster: b, log: log}
}

// Attach registers the signaler on the relay's notification stream and
// returns the unsubscribe func.
func (s *Signaler) Attach(r *Relay) func() {
	return r.SubscribeNotifications(s.handle)
}

func (s *Signaler) handle(n transactions.Notification) {
	var status string
	switch n.Type {
	case transactions.NotificationApproved:
		status = string(transactions.StatusApproved)
	case transactions.NotificationRejected:
		status = string(transactions.StatusRejected)
	default:
		return
	}

	topic := topicFor(n.Module)
	if topic == "" {
		return
	}

	tx, ok := s.store.TransactionByID(n.TransactionID)
	if !ok {
		return
	}

	sig := Signal{
		Topic:         topic,
		TransactionID: tx.ID,
		ModuleRef:     tx.ModuleRef,
		Amount:        tx.Amount,
		Status:        status,
		Actor:         tx.ApprovedBy,
		Timestamp:     n.Timestamp,
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	// A lost signal leaves the downstream record stale; the approval
	// itself stays authoritative, so failures are logged and counted but
	// never rolled back.
	if err := s.broadcaster.Publish(ctx, sig); err != nil {
		metrics.BroadcastFailures.WithLabelValues(topic).Inc()
		s.log.Error().
			Str("topic", topic).
			Int64("transaction_id", tx.ID).
			Err(err).
			Msg("cross-module signal publish failed")
		return
	}

	s.log.Info().
		Str("topic", topic).
		Int64("transaction_id", tx.ID).
		Str("status", status).
		Msg("cross-module signal published")
}

func topicFor(m transactions.Module) string {
	switch m {
	case transactions.ModuleWelfare:
		return TopicWelfareCompleted
	case transactions.ModuleInventory:
		return TopicLPOApproved
	case transactions.ModuleHR:
		return TopicHRDisbursement
	case transactions.ModuleEvents:
		return TopicEventSettled
	default:
		return ""
	}
}
