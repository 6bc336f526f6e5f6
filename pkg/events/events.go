// Package events publishes ledger domain events after a mutation has been committed.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chris/debt-ledger/pkg/models"
	"github.com/google/uuid"
)

// Type names a ledger event.
type Type string

const (
	TypeDebtCreated     Type = "debt.created"
	TypePaymentRecorded Type = "payment.recorded"
	TypeDebtPaid        Type = "debt.paid"
	TypeDebtDeleted     Type = "debt.deleted"
)

// Event is one committed change to the ledger.
// Amount is the original amount for debt.created and debt.paid, and the paid amount for payment.recorded.
type Event struct {
	ID              string        `json:"id"`
	Type            Type          `json:"type"`
	DebtID          string        `json:"debt_id"`
	ClientID        string        `json:"client_id"`
	Amount          int64         `json:"amount"`
	RemainingAmount int64         `json:"remaining_amount"`
	Comment         string        `json:"comment,omitempty"`
	Rating          models.Rating `json:"rating,omitempty"`
	OccurredAt      time.Time     `json:"occurred_at"`
}

// Publisher defines the interface for delivering ledger events.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// DebtCreated describes a newly recorded debt.
func DebtCreated(debt *models.Debt) Event {
	return Event{
		ID:              uuid.New().String(),
		Type:            TypeDebtCreated,
		DebtID:          debt.ID,
		ClientID:        debt.ClientID,
		Amount:          debt.OriginalAmount,
		RemainingAmount: debt.RemainingAmount,
		Comment:         debt.Comment,
		OccurredAt:      debt.CreatedAt,
	}
}

// PaymentRecorded describes a payment and, when it closed the debt, the completion.
func PaymentRecorded(debt *models.Debt, payment *models.Payment) []Event {
	out := []Event{{
		ID:              uuid.New().String(),
		Type:            TypePaymentRecorded,
		DebtID:          debt.ID,
		ClientID:        debt.ClientID,
		Amount:          payment.PaidAmount,
		RemainingAmount: payment.RemainingAmount,
		Comment:         payment.Comment,
		OccurredAt:      payment.CreatedAt,
	}}
	if debt.Status == models.PAID {
		out = append(out, Event{
			ID:         uuid.New().String(),
			Type:       TypeDebtPaid,
			DebtID:     debt.ID,
			ClientID:   debt.ClientID,
			Amount:     debt.OriginalAmount,
			Rating:     debt.Rating,
			OccurredAt: payment.CreatedAt,
		})
	}
	return out
}

// DebtDeleted describes a soft-deleted debt.
func DebtDeleted(debt *models.Debt) Event {
	occurred := time.Now().UTC()
	if debt.DeletedAt != nil {
		occurred = *debt.DeletedAt
	}
	return Event{
		ID:              uuid.New().String(),
		Type:            TypeDebtDeleted,
		DebtID:          debt.ID,
		ClientID:        debt.ClientID,
		Amount:          debt.OriginalAmount,
		RemainingAmount: debt.RemainingAmount,
		Comment:         debt.DeleteComment,
		OccurredAt:      occurred,
	}
}

// AuditEntry maps the event onto an audit trail row keyed by the event ID.
func (e Event) AuditEntry() *models.AuditEntry {
	return &models.AuditEntry{
		EntryID:         e.ID,
		EventType:       string(e.Type),
		DebtID:          e.DebtID,
		ClientID:        e.ClientID,
		Amount:          e.Amount,
		RemainingAmount: e.RemainingAmount,
		Comment:         e.Comment,
		Rating:          e.Rating,
		Timestamp:       e.OccurredAt,
	}
}

// Decode parses an event from a queue message body.
func Decode(body string) (Event, error) {
	var e Event
	if err := json.Unmarshal([]byte(body), &e); err != nil {
		return Event{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if e.ID == "" || e.Type == "" || e.DebtID == "" {
		return Event{}, fmt.Errorf("event is missing id, type or debt_id")
	}
	return e, nil
}
