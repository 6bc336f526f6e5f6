package ledger

import (
	"testing"

	"github.com/chris/debt-ledger/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rules(vs []Violation) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Rule
	}
	return out
}

func TestVerify(t *testing.T) {
	t.Run("Consistent Active Debt", func(t *testing.T) {
		d := activeDebt(t, 500)
		next, p, err := ApplyPayment(d, PaymentInput{Amount: 200, Comment: "part"}, now)
		require.NoError(t, err)

		assert.Empty(t, Verify(next, []models.Payment{*p}))
	})

	t.Run("Consistent Deleted Debt Keeps History", func(t *testing.T) {
		d := activeDebt(t, 500)
		next, p, err := ApplyPayment(d, PaymentInput{Amount: 200, Comment: "part"}, now)
		require.NoError(t, err)
		deleted, err := Delete(next, "duplicate entry", now)
		require.NoError(t, err)

		assert.Empty(t, Verify(deleted, []models.Payment{*p}))
	})

	t.Run("Detects Overpayment And Bad Snapshots", func(t *testing.T) {
		d := activeDebt(t, 500)
		d.RemainingAmount = 0
		d.PaymentCount = 2
		payments := []models.Payment{
			{ID: "p1", Seq: 1, PaidAmount: 300, RemainingAmount: 200},
			{ID: "p2", Seq: 2, PaidAmount: 300, RemainingAmount: 0},
		}

		got := rules(Verify(d, payments))

		assert.Contains(t, got, "no_overpayment")
		assert.Contains(t, got, "remaining_snapshot")
		assert.Contains(t, got, "remaining_balance")
		assert.Contains(t, got, "active_balance")
	})

	t.Run("Detects Paid Debt Without Rating", func(t *testing.T) {
		d := activeDebt(t, 500)
		d.Status = models.PAID
		d.RemainingAmount = 0
		d.PaymentCount = 1
		payments := []models.Payment{{ID: "p1", Seq: 1, PaidAmount: 500, RemainingAmount: 0}}

		got := rules(Verify(d, payments))

		assert.ElementsMatch(t, []string{"paid_rating", "paid_at"}, got)
	})

	t.Run("Detects Count Mismatch", func(t *testing.T) {
		d := activeDebt(t, 500)
		d.PaymentCount = 3

		assert.Equal(t, []string{"payment_count"}, rules(Verify(d, nil)))
	})
}
