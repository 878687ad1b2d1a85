package notifier

import (
	"context"
	"sync/atomic"

	"github.com/dmitrymomot/pesach-orders/core/order"
	"github.com/dmitrymomot/pesach-orders/pkg/async"
)

// Result reports which of the two emails went out.
type Result struct {
	StoreNotified     bool
	CustomerConfirmed bool // false when skipped (no customer email) or failed
}

// NotifyOrder issues the store notification and the customer confirmation
// concurrently and waits for both. Each send is independent: a failure of
// one does not cancel the other. Errors are joined.
func (n *Notifier) NotifyOrder(ctx context.Context, o order.NormalizedOrder, store order.StoreConfig) (Result, error) {
	var storeNotified, customerConfirmed atomic.Bool

	storeFuture := async.Exec(ctx, o, func(ctx context.Context, o order.NormalizedOrder) error {
		if err := n.SendStoreOrderEmail(ctx, o, store); err != nil {
			return err
		}
		storeNotified.Store(true)
		return nil
	})

	customerFuture := async.Exec(ctx, o, func(ctx context.Context, o order.NormalizedOrder) error {
		sent, err := n.SendCustomerConfirmationEmail(ctx, o, store)
		customerConfirmed.Store(sent)
		return err
	})

	err := async.ExecAll(storeFuture, customerFuture)

	return Result{
		StoreNotified:     storeNotified.Load(),
		CustomerConfirmed: customerConfirmed.Load(),
	}, err
}
