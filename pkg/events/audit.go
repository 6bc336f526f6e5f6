package events

import (
	"context"
	"fmt"

	"github.com/chris/debt-ledger/pkg/storage"
)

// AuditPublisher writes every event straight into the audit trail.
type AuditPublisher struct {
	Store storage.AuditWriter
}

// NewAuditPublisher creates a new AuditPublisher.
func NewAuditPublisher(store storage.AuditWriter) *AuditPublisher {
	return &AuditPublisher{Store: store}
}

var _ Publisher = (*AuditPublisher)(nil)

func (p *AuditPublisher) Publish(ctx context.Context, event Event) error {
	if err := p.Store.AppendAuditEntry(ctx, event.AuditEntry()); err != nil {
		return fmt.Errorf("failed to record %s event: %w", event.Type, err)
	}
	return nil
}

// NoOpPublisher drops every event.
type NoOpPublisher struct{}

// Publish does nothing.
func (p *NoOpPublisher) Publish(ctx context.Context, event Event) error {
	return nil
}
