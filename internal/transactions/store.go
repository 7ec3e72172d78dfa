package transactions

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/money"
)

// CategoryOfferings marks income transactions synthesized from offerings.
const CategoryOfferings = "Offerings"

// Summary aggregates the transaction set, optionally date-filtered.
// All amounts are in cents.
type Summary struct {
	TotalIncome      int64  `json:"total_income"`
	TotalExpenses    int64  `json:"total_expenses"`
	NetIncome        int64  `json:"net_income"`
	TransactionCount int    `json:"transaction_count"`
	OfferingTotal    int64  `json:"offering_total"`
	Currency         string `json:"currency"`
}

// Store holds every transaction for the process lifetime and is the only
// writer path. Reads return copies so callers cannot mutate store state.
// The mutex keeps the "only from Pending" guards race-free under
// concurrent HTTP callers.
type Store struct {
	mu       sync.RWMutex
	nextID   int64
	txs      []Transaction
	notifier Notifier
	recorder Recorder
	log      zerolog.Logger
}

func NewStore(notifier Notifier, recorder Recorder, log zerolog.Logger) *Store {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Store{nextID: 1, notifier: notifier, recorder: recorder, log: log}
}

// AddTransaction classifies the input through the approval gate, assigns
// an id and timestamps, and appends it. The initial status is Pending iff
// approval is required; otherwise the caller-supplied status or Completed.
func (s *Store) AddTransaction(ctx context.Context, in Input) (Transaction, error) {
	if err := in.Validate(); err != nil {
		return Transaction{}, err
	}

	now := time.Now().UTC()

	tx := Transaction{
		Date:        in.Date,
		Direction:   in.Direction,
		Category:    in.Category,
		Subcategory: in.Subcategory,
		Description: in.Description,
		Amount:      in.Amount,
		Currency:    in.Currency,
		Method:      in.Method,
		Reference:   in.Reference,
		ExternalRef: in.ExternalRef,
		Module:      in.Module,
		ModuleRef:   in.ModuleRef,
		CreatedBy:   in.CreatedBy,
		RequestedBy: in.RequestedBy,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if tx.Date.IsZero() {
		tx.Date = now
	}
	if tx.Currency == "" {
		tx.Currency = money.DefaultCurrency
	}
	if tx.Reference == "" {
		tx.Reference = "TXN-" + strings.ToUpper(uuid.NewString()[:8])
	}

	tx.RequiresApproval = RequiresApproval(tx.Module, tx.Amount)
	switch {
	case tx.RequiresApproval:
		tx.Status = StatusPending
	case in.Status != "":
		tx.Status = in.Status
	default:
		tx.Status = StatusCompleted
	}

	s.mu.Lock()
	tx.ID = s.nextID
	s.nextID++
	s.txs = append(s.txs, tx)
	snapshot := s.snapshotLocked()
	pending := s.pendingCountLocked()
	s.mu.Unlock()

	s.recorder.Record(ctx, LogEntry{
		Event:         "created",
		TransactionID: tx.ID,
		Actor:         tx.CreatedBy,
		ToStatus:      tx.Status,
		Amount:        tx.Amount,
		Module:        tx.Module,
		At:            now,
	})

	if tx.Status == StatusPending && tx.RequiresApproval {
		s.notifier.Notify(Notification{
			ID:            uuid.NewString(),
			Type:          NotificationApprovalRequired,
			Title:         "Approval Required",
			Message:       fmt.Sprintf("%s transaction of %s %s requires approval", tx.Module, tx.Currency, money.FormatCents(tx.Amount)),
			Amount:        tx.Amount,
			Module:        tx.Module,
			TransactionID: tx.ID,
			Timestamp:     now,
		})
	}

	s.notifier.TransactionsChanged(snapshot)
	s.notifier.PendingCountChanged(pending)

	s.log.Info().
		Int64("id", tx.ID).
		Str("module", string(tx.Module)).
		Str("status", string(tx.Status)).
		Int64("amount", tx.Amount).
		Msg("transaction recorded")

	return tx, nil
}

// Transactions returns a copy of every transaction.
func (s *Store) Transactions() []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) TransactionByID(id int64) (Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tx := range s.txs {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

func (s *Store) TransactionsByModule(m Module) []Transaction {
	return s.filter(func(tx Transaction) bool { return tx.Module == m })
}

func (s *Store) TransactionsByType(d Direction) []Transaction {
	return s.filter(func(tx Transaction) bool { return tx.Direction == d })
}

func (s *Store) TransactionsByDateRange(from, to time.Time) []Transaction {
	return s.filter(func(tx Transaction) bool { return inRange(tx.Date, &from, &to) })
}

// PendingTransactions is the queue surfaced to the approval reviewer.
func (s *Store) PendingTransactions() []Transaction {
	return s.filter(func(tx Transaction) bool {
		return tx.Status == StatusPending && tx.RequiresApproval
	})
}

// ApproveTransaction moves a pending transaction to Approved. It reports
// false, without mutating anything, when the id is unknown or the
// transaction is not currently Pending.
func (s *Store) ApproveTransaction(ctx context.Context, id int64, approvedBy string) bool {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 || s.txs[idx].Status != StatusPending {
		s.mu.Unlock()
		return false
	}
	now := time.Now().UTC()
	s.txs[idx].Status = StatusApproved
	s.txs[idx].ApprovedBy = approvedBy
	s.txs[idx].UpdatedAt = now
	tx := s.txs[idx]
	snapshot := s.snapshotLocked()
	pending := s.pendingCountLocked()
	s.mu.Unlock()

	s.recorder.Record(ctx, LogEntry{
		Event:         "approved",
		TransactionID: tx.ID,
		Actor:         approvedBy,
		FromStatus:    StatusPending,
		ToStatus:      StatusApproved,
		Amount:        tx.Amount,
		Module:        tx.Module,
		At:            now,
	})

	s.notifier.Notify(Notification{
		ID:            uuid.NewString(),
		Type:          NotificationApproved,
		Title:         "Transaction Approved",
		Message:       fmt.Sprintf("%s transaction of %s %s approved by %s", tx.Module, tx.Currency, money.FormatCents(tx.Amount), approvedBy),
		Amount:        tx.Amount,
		Module:        tx.Module,
		TransactionID: tx.ID,
		Timestamp:     now,
	})
	s.notifier.TransactionsChanged(snapshot)
	s.notifier.PendingCountChanged(pending)

	s.log.Info().Int64("id", tx.ID).Str("approved_by", approvedBy).Msg("transaction approved")
	return true
}

// RejectTransaction is symmetric to ApproveTransaction: Pending only,
// records the rejecting reviewer and appends the reason to the notes.
func (s *Store) RejectTransaction(ctx context.Context, id int64, rejectedBy, reason string) bool {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 || s.txs[idx].Status != StatusPending {
		s.mu.Unlock()
		return false
	}
	now := time.Now().UTC()
	s.txs[idx].Status = StatusRejected
	s.txs[idx].ApprovedBy = rejectedBy
	if reason != "" {
		if s.txs[idx].Notes != "" {
			s.txs[idx].Notes += "; "
		}
		s.txs[idx].Notes += "Rejected: " + reason
	}
	s.txs[idx].UpdatedAt = now
	tx := s.txs[idx]
	snapshot := s.snapshotLocked()
	pending := s.pendingCountLocked()
	s.mu.Unlock()

	s.recorder.Record(ctx, LogEntry{
		Event:         "rejected",
		TransactionID: tx.ID,
		Actor:         rejectedBy,
		FromStatus:    StatusPending,
		ToStatus:      StatusRejected,
		Amount:        tx.Amount,
		Module:        tx.Module,
		Notes:         reason,
		At:            now,
	})

	s.notifier.Notify(Notification{
		ID:            uuid.NewString(),
		Type:          NotificationRejected,
		Title:         "Transaction Rejected",
		Message:       fmt.Sprintf("%s transaction of %s %s rejected: %s", tx.Module, tx.Currency, money.FormatCents(tx.Amount), reason),
		Amount:        tx.Amount,
		Module:        tx.Module,
		TransactionID: tx.ID,
		Timestamp:     now,
	})
	s.notifier.TransactionsChanged(snapshot)
	s.notifier.PendingCountChanged(pending)

	s.log.Info().Int64("id", tx.ID).Str("rejected_by", rejectedBy).Str("reason", reason).Msg("transaction rejected")
	return true
}

// UpdateTransactionStatus is the lower-level direct status set used for
// non-approval transitions such as Completed or Cancelled. The only guard
// is that the record exists and that no terminal status moves back to
// Pending.
func (s *Store) UpdateTransactionStatus(ctx context.Context, id int64, status Status, approvedBy string) bool {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	if status == StatusPending && s.txs[idx].Status != StatusPending {
		s.mu.Unlock()
		return false
	}
	now := time.Now().UTC()
	from := s.txs[idx].Status
	s.txs[idx].Status = status
	if approvedBy != "" {
		s.txs[idx].ApprovedBy = approvedBy
	}
	s.txs[idx].UpdatedAt = now
	tx := s.txs[idx]
	snapshot := s.snapshotLocked()
	pending := s.pendingCountLocked()
	s.mu.Unlock()

	s.recorder.Record(ctx, LogEntry{
		Event:         "status_changed",
		TransactionID: tx.ID,
		Actor:         approvedBy,
		FromStatus:    from,
		ToStatus:      status,
		Amount:        tx.Amount,
		Module:        tx.Module,
		At:            now,
	})

	s.notifier.TransactionsChanged(snapshot)
	s.notifier.PendingCountChanged(pending)
	return true
}

// DeleteTransaction removes the record unconditionally if found.
func (s *Store) DeleteTransaction(ctx context.Context, id int64) bool {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	tx := s.txs[idx]
	s.txs = append(s.txs[:idx], s.txs[idx+1:]...)
	snapshot := s.snapshotLocked()
	pending := s.pendingCountLocked()
	s.mu.Unlock()

	s.recorder.Record(ctx, LogEntry{
		Event:         "deleted",
		TransactionID: tx.ID,
		FromStatus:    tx.Status,
		Amount:        tx.Amount,
		Module:        tx.Module,
		At:            time.Now().UTC(),
	})

	s.notifier.TransactionsChanged(snapshot)
	s.notifier.PendingCountChanged(pending)
	return true
}

// FinancialSummary aggregates totals over the optionally date-filtered
// set. Pure derived computation, no side effects.
func (s *Store) FinancialSummary(from, to *time.Time) Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := Summary{Currency: money.DefaultCurrency}
	for _, tx := range s.txs {
		if !inRange(tx.Date, from, to) {
			continue
		}
		sum.TransactionCount++
		switch tx.Direction {
		case DirectionIncome:
			sum.TotalIncome += tx.Amount
			if tx.Category == CategoryOfferings {
				sum.OfferingTotal += tx.Amount
			}
		case DirectionExpense:
			sum.TotalExpenses += tx.Amount
		}
	}
	sum.NetIncome = sum.TotalIncome - sum.TotalExpenses
	return sum
}

func (s *Store) PendingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pendingCountLocked()
}

func (s *Store) filter(keep func(Transaction) bool) []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Transaction, 0)
	for _, tx := range s.txs {
		if keep(tx) {
			out = append(out, tx)
		}
	}
	return out
}

func (s *Store) snapshotLocked() []Transaction {
	out := make([]Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}

func (s *Store) pendingCountLocked() int {
	n := 0
	for _, tx := range s.txs {
		if tx.Status == StatusPending && tx.RequiresApproval {
			n++
		}
	}
	return n
}

func (s *Store) indexLocked(id int64) int {
	for i, tx := range s.txs {
		if tx.ID == id {
			return i
		}
	}
	return -1
}

func inRange(d time.Time, from, to *time.Time) bool {
	if from != nil && d.Before(*from) {
		return false
	}
	if to != nil && d.After(*to) {
		return false
	}
	return true
}

type noopNotifier struct{}

func (noopNotifier) TransactionsChanged([]Transaction) {}
func (noopNotifier) PendingCountChanged(int)           {}
func (noopNotifier) Notify(Notification)               {}

type noopRecorder struct{}

func (noopRecorder) Record(context.Context, LogEntry) {}
