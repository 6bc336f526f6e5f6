package storage

import (
	"context"

	"github.com/chris/debt-ledger/pkg/ledger"
	"github.com/chris/debt-ledger/pkg/models"
)

// NewDebt carries everything needed to persist a debt in one atomic write.
// When NewClient is true the client record is created alongside the debt;
// otherwise the client must already exist and a non-empty PhotoRef replaces its stored photo.
type NewDebt struct {
	Debt      *models.Debt
	Client    *models.Client
	NewClient bool
	PhotoRef  string
}

// DebtReader defines the interface for reading debt data.
type DebtReader interface {
	// GetDebt retrieves a debt by its ID. Unknown IDs return ledger.ErrNotFound.
	GetDebt(ctx context.Context, debtID string) (*models.Debt, error)

	// ListDebts returns one page of debts joined with their clients.
	ListDebts(ctx context.Context, filter models.DebtFilter) (*models.Page[models.DebtView], error)
}

// DebtManager defines the state-changing debt operations.
// Implementations run each call as a single atomic read-validate-write using the pure ledger transitions,
// and report a lost race as ledger.ErrConcurrency.
type DebtManager interface {
	// CreateDebt stores a new active debt and, for a new client, the client record.
	CreateDebt(ctx context.Context, in NewDebt) (*models.Debt, error)

	// RecordPayment applies a payment to an active debt and, when it closes the debt, updates the client's reputation.
	RecordPayment(ctx context.Context, debtID string, in ledger.PaymentInput) (*models.Debt, *models.Payment, error)

	// DeleteDebt soft-deletes an active debt.
	DeleteDebt(ctx context.Context, debtID, reason string) (*models.Debt, error)
}

// DebtStore combines the reader and manager interfaces.
type DebtStore interface {
	DebtReader
	DebtManager
}

// PaymentReader defines the interface for reading payment history.
type PaymentReader interface {
	// ListPayments returns a debt's payments, oldest first.
	ListPayments(ctx context.Context, debtID string) ([]models.Payment, error)
}
