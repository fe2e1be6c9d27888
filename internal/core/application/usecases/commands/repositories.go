// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"printworks/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the narrow UoW shape it actually needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// ReportRepoFactory provides access to the validation report repository
	// within a transaction.
	ReportRepoFactory interface {
		ValidationReportRepository() ports.ValidationReportRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PaymentUoW manages transactions for payment-only operations.
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// OrderPaymentUoW manages transactions touching both the order and its
	// payments: payment initiation, settlement and the follow-up order move.
	OrderPaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
	}

	// OrderPaymentUoWFactory creates new order+payment unit of work instances.
	OrderPaymentUoWFactory interface {
		Create() OrderPaymentUoW
	}

	// ValidationUoW manages transactions for the validation sub-cycle: the
	// report append plus the order move it triggers.
	ValidationUoW interface {
		TxManager
		OrderRepoFactory
		ReportRepoFactory
	}

	// ValidationUoWFactory creates new validation unit of work instances.
	ValidationUoWFactory interface {
		Create() ValidationUoW
	}
)
