// Package relay decouples the transaction store from its listeners.
// Delivery is synchronous, in-process and best-effort: there is no retry
// and no replay for subscribers registered after an event fired.
package relay

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/transactions"
)

type (
	TransactionsFunc func([]transactions.Transaction)
	PendingCountFunc func(int)
	NotificationFunc func(transactions.Notification)
)

// Relay implements transactions.Notifier and fans every store mutation
// out to three independent subscriber lists.
type Relay struct {
	mu        sync.RWMutex
	nextToken int64
	txSubs    map[int64]TransactionsFunc
	countSubs map[int64]PendingCountFunc
	noteSubs  map[int64]NotificationFunc
	log       zerolog.Logger
}

func New(log zerolog.Logger) *Relay {
	return &Relay{
		txSubs:    make(map[int64]TransactionsFunc),
		countSubs: make(map[int64]PendingCountFunc),
		noteSubs:  make(map[int64]NotificationFunc),
		log:       log,
	}
}

// SubscribeTransactions registers a listener for the full transaction
// snapshot on every mutation. The returned func unsubscribes.
func (r *Relay) SubscribeTransactions(fn TransactionsFunc) func() {
	r.mu.Lock()
	token := r.nextToken
	r.nextToken++
	r.txSubs[token] = fn
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		delete(r.txSubs, token)
		r.mu.Unlock()
	}
}

func (r *Relay) SubscribePendingCount(fn PendingCountFunc) func() {
	r.mu.Lock()
	token := r.nextToken
	r.nextToken++
	r.countSubs[token] = fn
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		delete(r.countSubs, token)
		r.mu.Unlock()
	}
}

func (r *Relay) SubscribeNotifications(fn NotificationFunc) func() {
	r.mu.Lock()
	token := r.nextToken
	r.nextToken++
	r.noteSubs[token] = fn
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		delete(r.noteSubs, token)
		r.mu.Unlock()
	}
}

func (r *Relay) TransactionsChanged(txs []transactions.Transaction) {
	r.mu.RLock()
	subs := make([]TransactionsFunc, 0, len(r.txSubs))
	for _, fn := range r.txSubs {
		subs = append(subs, fn)
	}
	r.mu.RUnlock()
	for _, fn := range subs {
		fn(txs)
	}
}

func (r *Relay) PendingCountChanged(count int) {
	r.mu.RLock()
	subs := make([]PendingCountFunc, 0, len(r.countSubs))
	for _, fn := range r.countSubs {
		subs = append(subs, fn)
	}
	r.mu.RUnlock()
	for _, fn := range subs {
		fn(count)
	}
}

func (r *Relay) Notify(n transactions.Notification) {
	r.mu.RLock()
	subs := make([]NotificationFunc, 0, len(r.noteSubs))
	for _, fn := range r.noteSubs {
		subs = append(subs, fn)
	}
	r.mu.RUnlock()

	r.log.Debug().
		Str("type", string(n.Type)).
		Int64("transaction_id", n.TransactionID).
		Msg("relaying notification")

	for _, fn := range subs {
		fn(n)
	}
}
