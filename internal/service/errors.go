package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Domain failures. Handlers match these with errors.Is; anything else is a 500.
var (
	ErrEventNotFound       = errors.New("Event not found")
	ErrEventHasOrders      = errors.New("Event cannot be deleted because a ticket has already been sold")
	ErrCategoryNotFound    = errors.New("Category not found")
	ErrUserNotFound        = errors.New("User not found")
	ErrEmailTaken          = errors.New("Email is already in use")
	ErrOrderNotFound       = errors.New("Order not found")
	ErrOrderNotPaid        = errors.New("Order has not been paid yet")
	ErrNotEnoughTickets    = errors.New("Not enough tickets available")
	ErrEventNotPurchasable = errors.New("Event is not available for purchase")
	ErrInvalidSignature    = errors.New("Invalid webhook signature")
	ErrInvalidPrice        = errors.New("Invalid price")
)

// wrap logs an infrastructure failure and keeps it as the cause.
func wrap(logger *zap.Logger, op string, err error) error {
	logger.Error(op, zap.Error(err))
	return fmt.Errorf("%s: %w", op, err)
}
