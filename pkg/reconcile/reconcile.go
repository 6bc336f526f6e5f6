// Package reconcile re-checks stored debts against their payment history.
package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/chris/debt-ledger/pkg/ledger"
	"github.com/chris/debt-ledger/pkg/models"
	"github.com/chris/debt-ledger/pkg/storage"
)

// DefaultPageSize is the number of debts read per listing call.
const DefaultPageSize = 200

// Store is the read access a reconciliation run needs.
type Store interface {
	storage.DebtReader
	storage.PaymentReader
}

// Report summarises one run.
type Report struct {
	DebtsChecked int
	Violations   []ledger.Violation
}

// latestPaid tracks the most recently completed debt seen for a client.
type latestPaid struct {
	paidAt     time.Time
	debtID     string
	rating     models.Rating
	reputation models.Reputation
}

// Run walks every debt oldest first, verifies it against its payments and checks that each
// client's reputation matches the rating of their most recently paid debt.
func Run(ctx context.Context, store Store, pageSize int) (*Report, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	report := &Report{}
	latest := map[string]*latestPaid{}

	for page := 1; ; page++ {
		res, err := store.ListDebts(ctx, models.DebtFilter{SortBy: models.SortDateOld, Page: page, Limit: pageSize})
		if err != nil {
			return nil, fmt.Errorf("failed to list debts page %d: %w", page, err)
		}

		for i := range res.Items {
			view := &res.Items[i]
			payments, err := store.ListPayments(ctx, view.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to list payments for debt %s: %w", view.ID, err)
			}
			report.DebtsChecked++
			report.Violations = append(report.Violations, ledger.Verify(&view.Debt, payments)...)

			if view.Status == models.PAID && view.PaidAt != nil {
				cur := latest[view.ClientID]
				if cur == nil || view.PaidAt.After(cur.paidAt) {
					latest[view.ClientID] = &latestPaid{
						paidAt:     *view.PaidAt,
						debtID:     view.ID,
						rating:     view.Rating,
						reputation: view.ClientReputation,
					}
				}
			}
		}

		if len(res.Items) < pageSize || int64(report.DebtsChecked) >= res.Total {
			break
		}
	}

	for _, l := range latest {
		if want := ledger.ReputationFor(l.rating); l.reputation != want {
			report.Violations = append(report.Violations, ledger.Violation{
				DebtID: l.debtID,
				Rule:   "client_reputation",
				Detail: fmt.Sprintf("client reputation is %q, last completed debt implies %q", l.reputation, want),
			})
		}
	}

	return report, nil
}
