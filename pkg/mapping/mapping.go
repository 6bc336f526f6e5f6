// Package mapping converts between the domain models and the generated API types.
package mapping

import (
	"time"

	"github.com/chris/debt-ledger/pkg/api"
	"github.com/chris/debt-ledger/pkg/models"
)

// ToApiDebt converts a domain Debt model to an API Debt model.
func ToApiDebt(debt *models.Debt) *api.Debt {
	return &api.Debt{
		Id:              debt.ID,
		ClientId:        debt.ClientID,
		OriginalAmount:  FromMinor(debt.OriginalAmount),
		RemainingAmount: FromMinor(debt.RemainingAmount),
		PaidAmount:      FromMinor(debt.PaidAmount()),
		Comment:         debt.Comment,
		Status:          api.DebtStatus(debt.Status),
		Rating:          toApiRating(debt.Rating),
		CreatedAt:       debt.CreatedAt,
		PaidAt:          utc(debt.PaidAt),
		DeletedAt:       utc(debt.DeletedAt),
		DeleteComment:   optional(debt.DeleteComment),
		PaymentCount:    debt.PaymentCount,
	}
}

func ToApiDebtView(v *models.DebtView) api.DebtView {
	return api.DebtView{
		Id:               v.ID,
		ClientId:         v.ClientID,
		OriginalAmount:   FromMinor(v.OriginalAmount),
		RemainingAmount:  FromMinor(v.RemainingAmount),
		PaidAmount:       FromMinor(v.PaidAmount()),
		Comment:          v.Comment,
		Status:           api.DebtStatus(v.Status),
		Rating:           toApiRating(v.Rating),
		CreatedAt:        v.CreatedAt,
		PaidAt:           utc(v.PaidAt),
		DeletedAt:        utc(v.DeletedAt),
		DeleteComment:    optional(v.DeleteComment),
		PaymentCount:     v.PaymentCount,
		ClientName:       v.ClientName,
		ClientPhone:      v.ClientPhone,
		ClientAddress:    v.ClientAddress,
		ClientPhotoRef:   optional(v.ClientPhotoRef),
		ClientReputation: api.Reputation(v.ClientReputation),
	}
}

// ToApiDebtViews always returns a non-nil slice so empty listings encode as [].
func ToApiDebtViews(views []models.DebtView) []api.DebtView {
	out := make([]api.DebtView, len(views))
	for i := range views {
		out[i] = ToApiDebtView(&views[i])
	}
	return out
}

func ToApiDebtPage(page *models.Page[models.DebtView]) *api.DebtPage {
	return &api.DebtPage{Data: ToApiDebtViews(page.Items), Total: page.Total}
}

// ToApiPayment converts a domain Payment model to an API Payment model.
func ToApiPayment(p *models.Payment) *api.Payment {
	return &api.Payment{
		Id:              p.ID,
		DebtId:          p.DebtID,
		Seq:             p.Seq,
		PaidAmount:      FromMinor(p.PaidAmount),
		RemainingAmount: FromMinor(p.RemainingAmount),
		Comment:         p.Comment,
		CreatedAt:       p.CreatedAt,
	}
}

func ToApiPayments(payments []models.Payment) []api.Payment {
	out := make([]api.Payment, len(payments))
	for i := range payments {
		out[i] = *ToApiPayment(&payments[i])
	}
	return out
}

func ToApiPaymentResult(debt *models.Debt, payment *models.Payment) *api.PaymentResult {
	return &api.PaymentResult{Debt: *ToApiDebt(debt), Payment: *ToApiPayment(payment)}
}

// ToApiClientSummary converts a directory entry to its API model.
func ToApiClientSummary(c *models.ClientSummary) api.ClientSummary {
	return api.ClientSummary{
		Id:            c.ID,
		Fullname:      c.Fullname,
		Phone:         c.Phone,
		Address:       c.Address,
		PhotoRef:      optional(c.PhotoRef),
		Reputation:    api.Reputation(c.Reputation),
		CreatedAt:     c.CreatedAt,
		HasActiveDebt: c.HasActiveDebt,
	}
}

func ToApiClientSummaries(clients []models.ClientSummary) []api.ClientSummary {
	out := make([]api.ClientSummary, len(clients))
	for i := range clients {
		out[i] = ToApiClientSummary(&clients[i])
	}
	return out
}

func ToApiClientPage(page *models.Page[models.ClientSummary]) *api.ClientPage {
	return &api.ClientPage{Data: ToApiClientSummaries(page.Items), Total: page.Total}
}

// ToApiAuditEntry converts an audit trail row to its API model.
func ToApiAuditEntry(e *models.AuditEntry) api.AuditEntry {
	return api.AuditEntry{
		EntryId:         e.EntryID,
		EventType:       e.EventType,
		DebtId:          e.DebtID,
		ClientId:        e.ClientID,
		Amount:          FromMinor(e.Amount),
		RemainingAmount: FromMinor(e.RemainingAmount),
		Comment:         optional(e.Comment),
		Rating:          toApiRating(e.Rating),
		Timestamp:       e.Timestamp,
	}
}

func ToApiAuditEntries(entries []models.AuditEntry) []api.AuditEntry {
	out := make([]api.AuditEntry, len(entries))
	for i := range entries {
		out[i] = ToApiAuditEntry(&entries[i])
	}
	return out
}

func toApiRating(r models.Rating) *api.Rating {
	if r == "" {
		return nil
	}
	rating := api.Rating(r)
	return &rating
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
