// Package ledger persists an append-only status history for every
// transaction lifecycle event, so approvals survive restarts and remain
// auditable. Writes are best-effort: a failed insert is logged and never
// blocks the store.
package ledger

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/transactions"
)

const writeTimeout = 2 * time.Second

type Recorder struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

func NewRecorder(pool *pgxpool.Pool, log zerolog.Logger) *Recorder {
	return &Recorder{pool: pool, log: log}
}

func (r *Recorder) Record(ctx context.Context, e transactions.LogEntry) {
	if r == nil || r.pool == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	_, err := r.pool.Exec(ctx, `
INSERT INTO transaction_log (event, transaction_id, actor, from_status, to_status, amount, module, notes, occurred_at)
VALUES ($1, $2, NULLIF($3,''), NULLIF($4,''), NULLIF($5,''), $6, $7, NULLIF($8,''), $9)
`, e.Event, e.TransactionID, e.Actor, string(e.FromStatus), string(e.ToStatus), e.Amount, string(e.Module), e.Notes, e.At)
	if err != nil {
		r.log.Warn().
			Str("event", e.Event).
			Int64("transaction_id", e.TransactionID).
			Err(err).
			Msg("failed to record ledger entry")
	}
}

// History returns the lifecycle events of one transaction, oldest first.
func (r *Recorder) History(ctx context.Context, transactionID int64) ([]transactions.LogEntry, error) {
	rows, err := r.pool.Query(ctx, `
SELECT event, transaction_id, COALESCE(actor,''), COALESCE(from_status,''), COALESCE(to_status,''), amount, module, COALESCE(notes,''), occurred_at
FROM transaction_log
WHERE transaction_id = $1
ORDER BY occurred_at ASC
`, transactionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]transactions.LogEntry, 0)
	for rows.Next() {
		var e transactions.LogEntry
		var from, to, module string
		if err := rows.Scan(&e.Event, &e.TransactionID, &e.Actor, &from, &to, &e.Amount, &module, &e.Notes, &e.At); err != nil {
			return nil, err
		}
		e.FromStatus = transactions.Status(from)
		e.ToStatus = transactions.Status(to)
		e.Module = transactions.Module(module)
		out = append(out, e)
	}
	return out, rows.Err()
}
