package sqlstore

import (
	"strings"
	"time"

	"github.com/chris/debt-ledger/pkg/models"
)

// ClientRecord is the clients table row. FullnameLower and AddressLower hold Unicode-folded copies for
// search, since SQLite's LOWER only folds ASCII.
type ClientRecord struct {
	ID            string `gorm:"primaryKey"`
	Fullname      string
	FullnameLower string
	Phone         string
	Address       string
	AddressLower  string
	PhotoRef      string
	Reputation    string
	CreatedAt     time.Time
}

func (ClientRecord) TableName() string { return "clients" }

// DebtRecord is the debts table row.
type DebtRecord struct {
	ID              string `gorm:"primaryKey"`
	ClientID        string
	OriginalAmount  int64
	RemainingAmount int64
	Comment         string
	Status          string
	Rating          string
	CreatedAt       time.Time
	PaidAt          *time.Time
	DeletedAt       *time.Time
	DeleteComment   string
	PaymentCount    int64
	Version         int64
}

func (DebtRecord) TableName() string { return "debts" }

// PaymentRecord is the payments table row.
type PaymentRecord struct {
	ID              string `gorm:"primaryKey"`
	DebtID          string
	Seq             int64
	PaidAmount      int64
	RemainingAmount int64
	Comment         string
	CreatedAt       time.Time
}

func (PaymentRecord) TableName() string { return "payments" }

// AuditRecord is the audit_entries table row.
type AuditRecord struct {
	EntryID         string `gorm:"primaryKey"`
	EventType       string
	DebtID          string
	ClientID        string
	Amount          int64
	RemainingAmount int64
	Comment         string
	Rating          string
	RecordedAt      time.Time
}

func (AuditRecord) TableName() string { return "audit_entries" }

type debtViewRecord struct {
	DebtRecord
	ClientName       string
	ClientPhone      string
	ClientAddress    string
	ClientPhotoRef   string
	ClientReputation string
}

type clientSummaryRecord struct {
	ClientRecord
	HasActiveDebt bool
}

func toClientRecord(c *models.Client) *ClientRecord {
	return &ClientRecord{
		ID:            c.ID,
		Fullname:      c.Fullname,
		FullnameLower: strings.ToLower(c.Fullname),
		Phone:         c.Phone,
		Address:       c.Address,
		AddressLower:  strings.ToLower(c.Address),
		PhotoRef:      c.PhotoRef,
		Reputation:    string(c.Reputation),
		CreatedAt:     c.CreatedAt.UTC(),
	}
}

func (r *ClientRecord) model() *models.Client {
	return &models.Client{
		ID:         r.ID,
		Fullname:   r.Fullname,
		Phone:      r.Phone,
		Address:    r.Address,
		PhotoRef:   r.PhotoRef,
		Reputation: models.Reputation(r.Reputation),
		CreatedAt:  r.CreatedAt.UTC(),
	}
}

func toDebtRecord(d *models.Debt) *DebtRecord {
	return &DebtRecord{
		ID:              d.ID,
		ClientID:        d.ClientID,
		OriginalAmount:  d.OriginalAmount,
		RemainingAmount: d.RemainingAmount,
		Comment:         d.Comment,
		Status:          string(d.Status),
		Rating:          string(d.Rating),
		CreatedAt:       d.CreatedAt.UTC(),
		PaidAt:          utcPtr(d.PaidAt),
		DeletedAt:       utcPtr(d.DeletedAt),
		DeleteComment:   d.DeleteComment,
		PaymentCount:    d.PaymentCount,
		Version:         d.Version,
	}
}

func (r *DebtRecord) model() *models.Debt {
	return &models.Debt{
		ID:              r.ID,
		ClientID:        r.ClientID,
		OriginalAmount:  r.OriginalAmount,
		RemainingAmount: r.RemainingAmount,
		Comment:         r.Comment,
		Status:          models.DebtStatus(r.Status),
		Rating:          models.Rating(r.Rating),
		CreatedAt:       r.CreatedAt.UTC(),
		PaidAt:          utcPtr(r.PaidAt),
		DeletedAt:       utcPtr(r.DeletedAt),
		DeleteComment:   r.DeleteComment,
		PaymentCount:    r.PaymentCount,
		Version:         r.Version,
	}
}

func toPaymentRecord(p *models.Payment) *PaymentRecord {
	return &PaymentRecord{
		ID:              p.ID,
		DebtID:          p.DebtID,
		Seq:             p.Seq,
		PaidAmount:      p.PaidAmount,
		RemainingAmount: p.RemainingAmount,
		Comment:         p.Comment,
		CreatedAt:       p.CreatedAt.UTC(),
	}
}

func (r *PaymentRecord) model() models.Payment {
	return models.Payment{
		ID:              r.ID,
		DebtID:          r.DebtID,
		Seq:             r.Seq,
		PaidAmount:      r.PaidAmount,
		RemainingAmount: r.RemainingAmount,
		Comment:         r.Comment,
		CreatedAt:       r.CreatedAt.UTC(),
	}
}

func toAuditRecord(e *models.AuditEntry) *AuditRecord {
	return &AuditRecord{
		EntryID:         e.EntryID,
		EventType:       e.EventType,
		DebtID:          e.DebtID,
		ClientID:        e.ClientID,
		Amount:          e.Amount,
		RemainingAmount: e.RemainingAmount,
		Comment:         e.Comment,
		Rating:          string(e.Rating),
		RecordedAt:      e.Timestamp.UTC(),
	}
}

func (r *AuditRecord) model() models.AuditEntry {
	return models.AuditEntry{
		EntryID:         r.EntryID,
		EventType:       r.EventType,
		DebtID:          r.DebtID,
		ClientID:        r.ClientID,
		Amount:          r.Amount,
		RemainingAmount: r.RemainingAmount,
		Comment:         r.Comment,
		Rating:          models.Rating(r.Rating),
		Timestamp:       r.RecordedAt.UTC(),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
