package reconcile_test

import (
	"context"
	"testing"
	"time"

	"github.com/chris/debt-ledger/pkg/models"
	"github.com/chris/debt-ledger/pkg/reconcile"
	"github.com/chris/debt-ledger/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func paidView(id, clientID string, paidAt time.Time, rating models.Rating, reputation models.Reputation) models.DebtView {
	return models.DebtView{
		Debt: models.Debt{
			ID: id, ClientID: clientID, OriginalAmount: 1000, RemainingAmount: 0,
			Status: models.PAID, Rating: rating, PaidAt: &paidAt, PaymentCount: 1,
		},
		ClientReputation: reputation,
	}
}

func fullPayment(debtID string) []models.Payment {
	return []models.Payment{{ID: "p-" + debtID, DebtID: debtID, Seq: 1, PaidAmount: 1000, RemainingAmount: 0}}
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("Consistent Ledger", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockStore.On("ListDebts", mock.Anything, models.DebtFilter{SortBy: models.SortDateOld, Page: 1, Limit: 2}).Once().
			Return(&models.Page[models.DebtView]{Items: []models.DebtView{
				paidView("d1", "c1", day, models.RatingBad, models.ReputationGood),
				paidView("d2", "c1", day.Add(time.Hour), models.RatingGood, models.ReputationGood),
			}, Total: 3}, nil)
		mockStore.On("ListDebts", mock.Anything, models.DebtFilter{SortBy: models.SortDateOld, Page: 2, Limit: 2}).Once().
			Return(&models.Page[models.DebtView]{Items: []models.DebtView{
				{Debt: models.Debt{ID: "d3", ClientID: "c2", OriginalAmount: 500, RemainingAmount: 500, Status: models.ACTIVE}, ClientReputation: models.ReputationNew},
			}, Total: 3}, nil)
		mockStore.On("ListPayments", mock.Anything, "d1").Once().Return(fullPayment("d1"), nil)
		mockStore.On("ListPayments", mock.Anything, "d2").Once().Return(fullPayment("d2"), nil)
		mockStore.On("ListPayments", mock.Anything, "d3").Once().Return([]models.Payment{}, nil)

		report, err := reconcile.Run(ctx, mockStore, 2)

		require.NoError(t, err)
		assert.Equal(t, 3, report.DebtsChecked)
		assert.Empty(t, report.Violations)
		mockStore.AssertExpectations(t)
	})

	t.Run("Detects Drift", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		drifted := models.DebtView{Debt: models.Debt{ID: "d1", ClientID: "c1", OriginalAmount: 1000, RemainingAmount: 400, Status: models.ACTIVE, PaymentCount: 1}}
		mockStore.On("ListDebts", mock.Anything, mock.Anything).Once().
			Return(&models.Page[models.DebtView]{Items: []models.DebtView{
				drifted,
				paidView("d2", "c2", day, models.RatingUntrusted, models.ReputationGood),
			}, Total: 2}, nil)
		mockStore.On("ListPayments", mock.Anything, "d1").Once().
			Return([]models.Payment{{ID: "p1", DebtID: "d1", Seq: 1, PaidAmount: 500, RemainingAmount: 500}}, nil)
		mockStore.On("ListPayments", mock.Anything, "d2").Once().Return(fullPayment("d2"), nil)

		report, err := reconcile.Run(ctx, mockStore, 0)

		require.NoError(t, err)
		rules := map[string]string{}
		for _, v := range report.Violations {
			rules[v.Rule] = v.DebtID
		}
		assert.Equal(t, "d1", rules["remaining_balance"])
		assert.Equal(t, "d2", rules["client_reputation"])
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockStore.On("ListDebts", mock.Anything, mock.Anything).Once().Return(nil, assert.AnError)

		_, err := reconcile.Run(ctx, mockStore, 10)

		assert.ErrorIs(t, err, assert.AnError)
	})
}
