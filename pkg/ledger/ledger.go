// Package ledger holds the debt lifecycle rules as pure functions.
// Every transition takes the current record and returns the next one or an error; nothing here touches storage.
package ledger

import (
	"strings"
	"time"

	"github.com/chris/debt-ledger/pkg/models"
	"github.com/google/uuid"
)

// PaymentInput is a validated request to repay part or all of a debt.
type PaymentInput struct {
	Amount  int64
	Comment string
	Rating  models.Rating
}

// NewDebt builds an active debt with the full amount outstanding.
func NewDebt(clientID string, amount int64, comment string, now time.Time) (*models.Debt, error) {
	if clientID == "" {
		return nil, ValidationError("client id is required")
	}
	if amount <= 0 {
		return nil, ValidationError("amount must be greater than zero")
	}

	return &models.Debt{
		ID:              uuid.New().String(),
		ClientID:        clientID,
		OriginalAmount:  amount,
		RemainingAmount: amount,
		Comment:         strings.TrimSpace(comment),
		Status:          models.ACTIVE,
		CreatedAt:       now,
		Version:         1,
	}, nil
}

// ApplyPayment computes the debt after a payment and the payment row recording it.
// The input debt is not modified. A payment that zeroes the balance closes the debt and requires a rating.
func ApplyPayment(debt *models.Debt, in PaymentInput, now time.Time) (*models.Debt, *models.Payment, error) {
	if in.Amount <= 0 {
		return nil, nil, ValidationError("paid amount must be greater than zero")
	}
	if strings.TrimSpace(in.Comment) == "" {
		return nil, nil, ValidationError("payment comment is required")
	}
	if in.Rating != "" && !in.Rating.Valid() {
		return nil, nil, ValidationError("unknown rating %q", in.Rating)
	}
	if debt.Status != models.ACTIVE {
		return nil, nil, InvalidStateError("debt %s is %s and cannot accept payments", debt.ID, debt.Status)
	}
	if in.Amount > debt.RemainingAmount {
		return nil, nil, OverpaymentError(in.Amount, debt.RemainingAmount)
	}

	remaining := debt.RemainingAmount - in.Amount
	if remaining == 0 && in.Rating == "" {
		return nil, nil, MissingRatingError()
	}

	next := *debt
	next.RemainingAmount = remaining
	next.PaymentCount++
	next.Version++
	if remaining == 0 {
		paidAt := now
		next.Status = models.PAID
		next.PaidAt = &paidAt
		next.Rating = in.Rating
	}

	payment := &models.Payment{
		ID:              uuid.New().String(),
		DebtID:          debt.ID,
		Seq:             next.PaymentCount,
		PaidAmount:      in.Amount,
		RemainingAmount: remaining,
		Comment:         strings.TrimSpace(in.Comment),
		CreatedAt:       now,
	}

	return &next, payment, nil
}

// Delete retires an active debt. Paid and deleted debts are closed records.
func Delete(debt *models.Debt, reason string, now time.Time) (*models.Debt, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ValidationError("a reason is required to delete a debt")
	}
	if debt.Status != models.ACTIVE {
		return nil, InvalidStateError("debt %s is %s and cannot be deleted", debt.ID, debt.Status)
	}

	deletedAt := now
	next := *debt
	next.Status = models.DELETED
	next.DeletedAt = &deletedAt
	next.DeleteComment = reason
	next.Version++

	return &next, nil
}

// ReputationFor maps the rating of the most recently completed debt to the client's reputation.
func ReputationFor(r models.Rating) models.Reputation {
	switch r {
	case models.RatingGood:
		return models.ReputationGood
	case models.RatingBad:
		return models.ReputationBad
	case models.RatingUntrusted:
		return models.ReputationUntrusted
	default:
		return models.ReputationNew
	}
}
