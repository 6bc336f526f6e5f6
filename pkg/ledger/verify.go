package ledger

import (
	"fmt"
	"sort"

	"github.com/chris/debt-ledger/pkg/models"
)

// Violation describes one broken ledger invariant on a stored debt.
type Violation struct {
	DebtID string `json:"debt_id"`
	Rule   string `json:"rule"`
	Detail string `json:"detail"`
}

func (v Violation) String() string {
	return fmt.Sprintf("debt %s: %s: %s", v.DebtID, v.Rule, v.Detail)
}

// Verify checks a debt against its payment history and returns every violation found.
func Verify(debt *models.Debt, payments []models.Payment) []Violation {
	var out []Violation
	add := func(rule, format string, args ...any) {
		out = append(out, Violation{DebtID: debt.ID, Rule: rule, Detail: fmt.Sprintf(format, args...)})
	}

	history := make([]models.Payment, len(payments))
	copy(history, payments)
	sort.SliceStable(history, func(i, j int) bool { return history[i].Seq < history[j].Seq })

	if debt.OriginalAmount <= 0 {
		add("positive_amount", "original amount is %d", debt.OriginalAmount)
	}

	var paid int64
	previous := debt.OriginalAmount
	for _, p := range history {
		if p.PaidAmount <= 0 {
			add("positive_payment", "payment %s has amount %d", p.ID, p.PaidAmount)
		}
		paid += p.PaidAmount
		if want := debt.OriginalAmount - paid; p.RemainingAmount != want {
			add("remaining_snapshot", "payment %s records remaining %d, expected %d", p.ID, p.RemainingAmount, want)
		}
		if p.RemainingAmount >= previous {
			add("strictly_decreasing", "payment %s remaining %d does not decrease from %d", p.ID, p.RemainingAmount, previous)
		}
		previous = p.RemainingAmount
	}

	if paid > debt.OriginalAmount {
		add("no_overpayment", "payments total %d exceed original amount %d", paid, debt.OriginalAmount)
	}
	if want := debt.OriginalAmount - paid; debt.RemainingAmount != want {
		add("remaining_balance", "debt remaining %d, payments imply %d", debt.RemainingAmount, want)
	}
	if debt.PaymentCount != int64(len(history)) {
		add("payment_count", "debt counts %d payments, history has %d", debt.PaymentCount, len(history))
	}

	switch debt.Status {
	case models.PAID:
		if debt.RemainingAmount != 0 {
			add("paid_zero_balance", "paid debt has remaining %d", debt.RemainingAmount)
		}
		if !debt.Rating.Valid() {
			add("paid_rating", "paid debt has rating %q", debt.Rating)
		}
		if debt.PaidAt == nil {
			add("paid_at", "paid debt has no paid_at")
		}
	case models.ACTIVE:
		if debt.RemainingAmount == 0 {
			add("active_balance", "active debt has zero remaining balance")
		}
		if debt.PaidAt != nil || debt.DeletedAt != nil {
			add("active_timestamps", "active debt carries a closing timestamp")
		}
	case models.DELETED:
		if debt.DeletedAt == nil || debt.DeleteComment == "" {
			add("deleted_reason", "deleted debt lacks deleted_at or delete_comment")
		}
		if debt.PaidAt != nil {
			add("deleted_paid_at", "deleted debt carries paid_at")
		}
	default:
		add("status", "unknown status %q", debt.Status)
	}

	return out
}
