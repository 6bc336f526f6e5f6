package models

import (
	"time"
)

// DebtStatus defines the lifecycle states of a debt.
type DebtStatus string

const (
	ACTIVE  DebtStatus = "active"
	PAID    DebtStatus = "paid"
	DELETED DebtStatus = "deleted"
)

// Valid reports whether s is one of the known statuses.
func (s DebtStatus) Valid() bool {
	switch s {
	case ACTIVE, PAID, DELETED:
		return true
	}
	return false
}

// Rating is the qualitative label recorded when a debt is fully repaid.
type Rating string

const (
	RatingGood      Rating = "good"
	RatingBad       Rating = "bad"
	RatingUntrusted Rating = "untrusted"
)

func (r Rating) Valid() bool {
	switch r {
	case RatingGood, RatingBad, RatingUntrusted:
		return true
	}
	return false
}

// Reputation is the client-level attribute derived from the most recently completed debt.
type Reputation string

const (
	ReputationNew       Reputation = "new"
	ReputationGood      Reputation = "good"
	ReputationBad       Reputation = "bad"
	ReputationUntrusted Reputation = "untrusted"
)

// Client represents a customer who can owe debts.
type Client struct {
	ID         string     `json:"id" dynamodbav:"id"`
	Fullname   string     `json:"fullname" dynamodbav:"fullname"`
	Phone      string     `json:"phone" dynamodbav:"phone"`
	Address    string     `json:"address" dynamodbav:"address"`
	PhotoRef   string     `json:"photo_ref,omitempty" dynamodbav:"photo_ref,omitempty"`
	Reputation Reputation `json:"reputation" dynamodbav:"reputation"`
	CreatedAt  time.Time  `json:"created_at" dynamodbav:"created_at"`
}

// ClientSummary is a client as returned by directory lookups.
type ClientSummary struct {
	Client
	HasActiveDebt bool `json:"has_active_debt"`
}

// Debt represents the internal domain model for a debt.
// Amounts are minor currency units.
type Debt struct {
	ID              string     `json:"id" dynamodbav:"id"`
	ClientID        string     `json:"client_id" dynamodbav:"client_id"`
	OriginalAmount  int64      `json:"original_amount" dynamodbav:"original_amount"`
	RemainingAmount int64      `json:"remaining_amount" dynamodbav:"remaining_amount"`
	Comment         string     `json:"comment" dynamodbav:"comment"`
	Status          DebtStatus `json:"status" dynamodbav:"status"`
	Rating          Rating     `json:"rating,omitempty" dynamodbav:"rating,omitempty"`
	CreatedAt       time.Time  `json:"created_at" dynamodbav:"created_at"`
	PaidAt          *time.Time `json:"paid_at,omitempty" dynamodbav:"paid_at,omitempty"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty" dynamodbav:"deleted_at,omitempty"`
	DeleteComment   string     `json:"delete_comment,omitempty" dynamodbav:"delete_comment,omitempty"`
	PaymentCount    int64      `json:"payment_count" dynamodbav:"payment_count"`
	Version         int64      `json:"version" dynamodbav:"version"`
}

// PaidAmount is the sum of all payments recorded against the debt.
func (d *Debt) PaidAmount() int64 {
	return d.OriginalAmount - d.RemainingAmount
}

// DebtView is a debt joined with the identity of the client who owes it.
type DebtView struct {
	Debt
	ClientName       string     `json:"client_name"`
	ClientPhone      string     `json:"client_phone"`
	ClientAddress    string     `json:"client_address"`
	ClientPhotoRef   string     `json:"client_photo_ref,omitempty"`
	ClientReputation Reputation `json:"client_reputation"`
}

// Payment is an append-only repayment record.
type Payment struct {
	ID              string    `json:"id" dynamodbav:"id"`
	DebtID          string    `json:"debt_id" dynamodbav:"debt_id"`
	Seq             int64     `json:"seq" dynamodbav:"seq"`
	PaidAmount      int64     `json:"paid_amount" dynamodbav:"paid_amount"`
	RemainingAmount int64     `json:"remaining_amount" dynamodbav:"remaining_amount"`
	Comment         string    `json:"comment" dynamodbav:"comment"`
	CreatedAt       time.Time `json:"created_at" dynamodbav:"created_at"`
}

// AuditEntry is one row of the ledger audit trail.
type AuditEntry struct {
	EntryID         string    `json:"entry_id" dynamodbav:"entry_id"`
	EventType       string    `json:"event_type" dynamodbav:"event_type"`
	DebtID          string    `json:"debt_id" dynamodbav:"debt_id"`
	ClientID        string    `json:"client_id" dynamodbav:"client_id"`
	Amount          int64     `json:"amount" dynamodbav:"amount"`
	RemainingAmount int64     `json:"remaining_amount" dynamodbav:"remaining_amount"`
	Comment         string    `json:"comment,omitempty" dynamodbav:"comment,omitempty"`
	Rating          Rating    `json:"rating,omitempty" dynamodbav:"rating,omitempty"`
	Timestamp       time.Time `json:"timestamp" dynamodbav:"timestamp"`
	GSI1PK          string    `json:"-" dynamodbav:"gsi1pk"`
}

// AuditPartition is the constant partition key used to list audit entries by time.
const AuditPartition = "AUDIT_ENTRIES"

// Sort keys accepted by debt listings.
const (
	SortDateNew    = "date_new"
	SortDateOld    = "date_old"
	SortName       = "name"
	SortAmountDesc = "amount_desc"
	SortAmountAsc  = "amount_asc"
)

// DateRange is a half-open [From, To) interval.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

// DebtFilter narrows a debt listing. Page is 1-indexed.
type DebtFilter struct {
	Status   DebtStatus
	ClientID string
	Search   string
	Date     *DateRange
	SortBy   string
	Page     int
	Limit    int
}

// Offset returns the number of rows to skip for the filter's page.
func (f DebtFilter) Offset() int {
	return offset(f.Page, f.Limit)
}

// ClientFilter narrows a client listing. Page is 1-indexed.
type ClientFilter struct {
	Search string
	Date   *DateRange
	Page   int
	Limit  int
}

func (f ClientFilter) Offset() int {
	return offset(f.Page, f.Limit)
}

func offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}

// Page is one page of a listing plus the total number of matching rows.
type Page[T any] struct {
	Items []T   `json:"data"`
	Total int64 `json:"total"`
}
