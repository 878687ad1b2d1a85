// Package notifier turns a normalized order into the two order emails:
// the store notification and the customer confirmation.
//
// Both sends are stateless single attempts against an email.EmailSender. A
// missing sender or inbox address fails with email.ErrInvalidConfig before
// anything is sent; transport errors come back untouched. Retrying, logging
// and user-facing messages belong to the caller.
//
//	n := notifier.New(sender, notifier.Config{
//		From:        "orders@shop.example",
//		OrdersEmail: "inbox@shop.example",
//	})
//
//	if err := n.SendStoreOrderEmail(ctx, o, store); err != nil {
//		return err
//	}
//	sent, err := n.SendCustomerConfirmationEmail(ctx, o, store)
//
// The two calls share nothing and may run in either order, concurrently, or
// not at all. NotifyOrder runs both in parallel and joins their errors.
package notifier
