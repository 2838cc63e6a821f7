package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"storefront-api/internal/usecase/readmodel"
)

// Notification is a message handed to the dispatcher. Delivery transport is
// an external collaborator; the pricing and commit paths never depend on it
// succeeding.
type Notification struct {
	To       string
	Username string
	Subject  string
	Body     string
}

type NotificationDispatcher interface {
	Send(ctx context.Context, n Notification) error
}

// PostCommitHook runs after an order is durably persisted. Hook failures are
// isolated: each failing hook contributes a warning to the response and
// nothing more. A hook must never unwind the committed order.
type PostCommitHook interface {
	Name() string
	Run(ctx context.Context, o *readmodel.OrderRM, buyer *readmodel.UserRM) error
}

// runPostCommitHooks executes every hook regardless of earlier failures and
// returns the collected warnings.
func runPostCommitHooks(ctx context.Context, hooks []PostCommitHook, o *readmodel.OrderRM, buyer *readmodel.UserRM) []string {
	var warnings []string
	for _, h := range hooks {
		if err := h.Run(ctx, o, buyer); err != nil {
			slog.Warn("post-commit hook failed", "hook", h.Name(), "order_id", o.ID, "error", err.Error())
			warnings = append(warnings, fmt.Sprintf("%s failed", h.Name()))
		}
	}
	return warnings
}

// OrderConfirmationHook sends the buyer an order confirmation message.
type OrderConfirmationHook struct {
	dispatcher NotificationDispatcher
}

func NewOrderConfirmationHook(dispatcher NotificationDispatcher) *OrderConfirmationHook {
	return &OrderConfirmationHook{dispatcher: dispatcher}
}

func (h *OrderConfirmationHook) Name() string {
	return "order confirmation notification"
}

func (h *OrderConfirmationHook) Run(ctx context.Context, o *readmodel.OrderRM, buyer *readmodel.UserRM) error {
	return h.dispatcher.Send(ctx, Notification{
		To:       buyer.Email,
		Username: buyer.Username,
		Subject:  "You created an order",
		Body:     fmt.Sprintf("Your order %s was successfully created. You are to pay %s.", o.ID, o.Total.StringFixed(2)),
	})
}
