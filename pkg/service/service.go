// Package service is the use-case layer between the HTTP handlers and storage.
// It validates requests, serialises mutations per debt and publishes events once a change is committed.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/chris/debt-ledger/pkg/events"
	"github.com/chris/debt-ledger/pkg/lock"
	"github.com/chris/debt-ledger/pkg/models"
	"github.com/chris/debt-ledger/pkg/photos"
	"github.com/chris/debt-ledger/pkg/storage"
	"github.com/go-playground/validator/v10"
)

// Listing bounds.
const (
	DefaultDebtLimit   = 20
	DefaultClientLimit = 200
	DefaultAuditLimit  = 50
	MaxLimit           = 500
	ClientDebtsLimit   = 1000
)

// DebtService covers the debt lifecycle.
type DebtService interface {
	CreateDebt(ctx context.Context, req CreateDebtRequest) (*models.Debt, error)
	RecordPayment(ctx context.Context, req RecordPaymentRequest) (*models.Debt, *models.Payment, error)
	DeleteDebt(ctx context.Context, req DeleteDebtRequest) (*models.Debt, error)
	ListDebts(ctx context.Context, req ListDebtsRequest) (*models.Page[models.DebtView], error)
	DebtsForClient(ctx context.Context, clientID string, status models.DebtStatus) ([]models.DebtView, error)
	ListPayments(ctx context.Context, debtID string) ([]models.Payment, error)
}

// ClientService covers the client directory.
type ClientService interface {
	SearchClients(ctx context.Context, query string) ([]models.ClientSummary, error)
	ListClients(ctx context.Context, req ListClientsRequest) (*models.Page[models.ClientSummary], error)
}

// AuditService reads the audit trail.
type AuditService interface {
	ListAuditEntries(ctx context.Context, limit int) ([]models.AuditEntry, error)
}

// Service composes every use case exposed over HTTP.
type Service interface {
	DebtService
	ClientService
	AuditService
}

// Ledger implements Service.
type Ledger struct {
	store     storage.ApiStore
	locker    lock.Locker
	publisher events.Publisher
	photos    photos.Store
	validate  *validator.Validate
	location  *time.Location
	now       func() time.Time
	logger    *slog.Logger
}

// Make sure we conform to the interface
var _ Service = (*Ledger)(nil)

// Option configures a Ledger.
type Option func(*Ledger)

func WithLocker(l lock.Locker) Option {
	return func(s *Ledger) { s.locker = l }
}

func WithPublisher(p events.Publisher) Option {
	return func(s *Ledger) { s.publisher = p }
}

// WithPhotoStore enables photo uploads. Without it, photo data on a request is rejected.
func WithPhotoStore(p photos.Store) Option {
	return func(s *Ledger) { s.photos = p }
}

// WithLocation sets the zone calendar-date filters are evaluated in.
func WithLocation(loc *time.Location) Option {
	return func(s *Ledger) { s.location = loc }
}

func WithClock(now func() time.Time) Option {
	return func(s *Ledger) { s.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Ledger) { s.logger = logger }
}

// New creates a Ledger. By default it locks in process, publishes nothing and uses UTC.
func New(store storage.ApiStore, opts ...Option) *Ledger {
	s := &Ledger{
		store:     store,
		locker:    lock.NewLocalLocker(lock.DefaultWait),
		publisher: &events.NoOpPublisher{},
		validate:  newValidator(),
		location:  time.UTC,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// publish delivers events after the mutation committed. Failures are logged, never returned.
func (s *Ledger) publish(ctx context.Context, evs ...events.Event) {
	ctx = context.WithoutCancel(ctx)
	for _, ev := range evs {
		if err := s.publisher.Publish(ctx, ev); err != nil {
			s.logger.Error("failed to publish event", "type", ev.Type, "debt_id", ev.DebtID, "error", err)
		}
	}
}

func clampLimit(limit, def int) int {
	switch {
	case limit <= 0:
		return def
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

// dayRange turns a calendar date into the [midnight, next midnight) range in loc.
func dayRange(date *time.Time, loc *time.Location) *models.DateRange {
	if date == nil {
		return nil
	}
	y, m, d := date.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return &models.DateRange{From: from, To: from.AddDate(0, 0, 1)}
}
