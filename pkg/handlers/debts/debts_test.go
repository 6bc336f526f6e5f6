package debts_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chris/debt-ledger/pkg/api"
	"github.com/chris/debt-ledger/pkg/handlers/debts"
	"github.com/chris/debt-ledger/pkg/ledger"
	"github.com/chris/debt-ledger/pkg/models"
	"github.com/chris/debt-ledger/pkg/service"
	"github.com/chris/debt-ledger/pkg/service/mocks"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) api.Error {
	t.Helper()
	var body api.Error
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestCreateDebt(t *testing.T) {
	t.Run("Success With New Client", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.DebtService)
		mockService.On("CreateDebt", mock.Anything, mock.MatchedBy(func(req service.CreateDebtRequest) bool {
			return req.ClientID == "" &&
				req.NewClient != nil &&
				req.NewClient.Fullname == "Bob Stone" &&
				req.NewClient.Phone == "555-0100" &&
				req.Amount.Equal(decimal.RequireFromString("500.50")) &&
				req.Comment == "flour" &&
				req.PhotoData == "data:image/jpeg;base64,/9g="
		})).Once().Return(&models.Debt{
			ID: "d1", ClientID: "c1", OriginalAmount: 50050, RemainingAmount: 50050, Comment: "flour", Status: models.ACTIVE, CreatedAt: createdAt,
		}, nil)

		h := debts.NewDebtsHandler(mockService)
		body := `{"new_client":{"fullname":"Bob Stone","phone":"555-0100"},"amount":"500.50","comment":"flour","photo_data":"data:image/jpeg;base64,/9g="}`
		req := httptest.NewRequest(http.MethodPost, "/api/debts/add", strings.NewReader(body))
		rr := httptest.NewRecorder()

		// Act
		h.CreateDebt(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var returned api.Debt
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		assert.Equal(t, "d1", returned.Id)
		assert.Equal(t, "500.50", returned.OriginalAmount.StringFixed(2))
		assert.True(t, returned.PaidAmount.IsZero())
		assert.Equal(t, api.DebtStatusActive, returned.Status)

		mockService.AssertExpectations(t)
	})

	t.Run("Invalid Body", func(t *testing.T) {
		mockService := new(mocks.DebtService)
		h := debts.NewDebtsHandler(mockService)

		req := httptest.NewRequest(http.MethodPost, "/api/debts/add", strings.NewReader("{"))
		rr := httptest.NewRecorder()

		h.CreateDebt(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "VALIDATION", decodeError(t, rr).Code)
		mockService.AssertNotCalled(t, "CreateDebt", mock.Anything, mock.Anything)
	})

	t.Run("Client Not Found", func(t *testing.T) {
		mockService := new(mocks.DebtService)
		mockService.On("CreateDebt", mock.Anything, mock.MatchedBy(func(req service.CreateDebtRequest) bool {
			return req.ClientID == "missing" && req.NewClient == nil
		})).Once().Return(nil, ledger.NotFoundError("client", "missing"))

		h := debts.NewDebtsHandler(mockService)
		req := httptest.NewRequest(http.MethodPost, "/api/debts/add", strings.NewReader(`{"client_id":"missing","amount":10}`))
		rr := httptest.NewRecorder()

		h.CreateDebt(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "client missing not found", decodeError(t, rr).Message)
		mockService.AssertExpectations(t)
	})
}

func TestPayDebt(t *testing.T) {
	paidAt := createdAt.Add(time.Hour)

	t.Run("Success", func(t *testing.T) {
		mockService := new(mocks.DebtService)
		mockService.On("RecordPayment", mock.Anything, mock.MatchedBy(func(req service.RecordPaymentRequest) bool {
			return req.DebtID == "d1" && req.Amount.Equal(decimal.NewFromInt(100)) && req.Comment == "cash" && req.Rating == models.RatingGood
		})).Once().Return(
			&models.Debt{ID: "d1", OriginalAmount: 10000, Status: models.PAID, Rating: models.RatingGood, PaidAt: &paidAt, PaymentCount: 1},
			&models.Payment{ID: "p1", DebtID: "d1", Seq: 1, PaidAmount: 10000, Comment: "cash", CreatedAt: paidAt},
			nil,
		)

		h := debts.NewDebtsHandler(mockService)
		req := httptest.NewRequest(http.MethodPost, "/api/debts/pay", strings.NewReader(`{"debt_id":"d1","paid_amount":100,"comment":"cash","rating":"good"}`))
		rr := httptest.NewRecorder()

		h.PayDebt(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var returned api.PaymentResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		assert.Equal(t, api.DebtStatusPaid, returned.Debt.Status)
		assert.Equal(t, "100.00", returned.Payment.PaidAmount.StringFixed(2))
		assert.Equal(t, int64(1), returned.Payment.Seq)
		mockService.AssertExpectations(t)
	})

	t.Run("Overpayment", func(t *testing.T) {
		mockService := new(mocks.DebtService)
		mockService.On("RecordPayment", mock.Anything, mock.Anything).Once().Return(nil, nil, ledger.OverpaymentError(20000, 10000))

		h := debts.NewDebtsHandler(mockService)
		req := httptest.NewRequest(http.MethodPost, "/api/debts/pay", strings.NewReader(`{"debt_id":"d1","paid_amount":200,"comment":"cash"}`))
		rr := httptest.NewRecorder()

		h.PayDebt(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Equal(t, "OVERPAYMENT", decodeError(t, rr).Code)
	})

	t.Run("Concurrent Modification", func(t *testing.T) {
		mockService := new(mocks.DebtService)
		mockService.On("RecordPayment", mock.Anything, mock.Anything).Once().Return(nil, nil, ledger.ConcurrencyError("debt d1 was modified concurrently"))

		h := debts.NewDebtsHandler(mockService)
		req := httptest.NewRequest(http.MethodPost, "/api/debts/pay", strings.NewReader(`{"debt_id":"d1","paid_amount":1,"comment":"cash"}`))
		rr := httptest.NewRecorder()

		h.PayDebt(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "1", rr.Header().Get("Retry-After"))
		assert.True(t, decodeError(t, rr).Retryable)
	})
}

func TestDeleteDebt(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		deletedAt := createdAt.Add(time.Hour)
		mockService := new(mocks.DebtService)
		mockService.On("DeleteDebt", mock.Anything, service.DeleteDebtRequest{DebtID: "d1", Reason: "entered twice"}).Once().
			Return(&models.Debt{ID: "d1", Status: models.DELETED, DeletedAt: &deletedAt, DeleteComment: "entered twice"}, nil)

		h := debts.NewDebtsHandler(mockService)
		req := httptest.NewRequest(http.MethodPost, "/api/debts/delete", strings.NewReader(`{"debt_id":"d1","comment":"entered twice"}`))
		rr := httptest.NewRecorder()

		h.DeleteDebt(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var returned api.Debt
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		assert.Equal(t, api.DebtStatusDeleted, returned.Status)
		require.NotNil(t, returned.DeleteComment)
		assert.Equal(t, "entered twice", *returned.DeleteComment)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid State", func(t *testing.T) {
		mockService := new(mocks.DebtService)
		mockService.On("DeleteDebt", mock.Anything, mock.Anything).Once().Return(nil, ledger.InvalidStateError("debt d1 is paid and cannot be deleted"))

		h := debts.NewDebtsHandler(mockService)
		req := httptest.NewRequest(http.MethodPost, "/api/debts/delete", strings.NewReader(`{"debt_id":"d1","comment":"oops"}`))
		rr := httptest.NewRecorder()

		h.DeleteDebt(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "INVALID_STATE", decodeError(t, rr).Code)
	})
}

func TestListDebts(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(mocks.DebtService)
		mockService.On("ListDebts", mock.Anything, mock.MatchedBy(func(req service.ListDebtsRequest) bool {
			return req.Status == models.DELETED &&
				req.SortBy == models.SortAmountAsc &&
				req.Search == "ali" &&
				req.Page == 2 &&
				req.Limit == 5 &&
				req.Date != nil && req.Date.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
		})).Once().Return(&models.Page[models.DebtView]{
			Items: []models.DebtView{{Debt: models.Debt{ID: "d1", Status: models.DELETED}, ClientName: "Alice"}},
			Total: 6,
		}, nil)

		h := debts.NewDebtsHandler(mockService)
		status := api.DebtStatusDeleted
		sortBy := api.SortByAmountAsc
		search := "ali"
		page, limit := 2, 5
		params := api.ListDebtsParams{
			Status: &status,
			SortBy: &sortBy,
			Search: &search,
			Date:   &openapi_types.Date{Time: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
			Page:   &page,
			Limit:  &limit,
		}
		rr := httptest.NewRecorder()

		h.ListDebts(rr, httptest.NewRequest(http.MethodGet, "/api/debts", nil), params)

		assert.Equal(t, http.StatusOK, rr.Code)
		var returned api.DebtPage
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		assert.Equal(t, int64(6), returned.Total)
		require.Len(t, returned.Data, 1)
		assert.Equal(t, "Alice", returned.Data[0].ClientName)
		mockService.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockService := new(mocks.DebtService)
		mockService.On("ListDebts", mock.Anything, mock.Anything).Once().Return(nil, assert.AnError)

		h := debts.NewDebtsHandler(mockService)
		rr := httptest.NewRecorder()

		h.ListDebts(rr, httptest.NewRequest(http.MethodGet, "/api/debts", nil), api.ListDebtsParams{})

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestListClientDebts(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(mocks.DebtService)
		mockService.On("DebtsForClient", mock.Anything, "c1", models.ACTIVE).Once().
			Return([]models.DebtView{{Debt: models.Debt{ID: "d1"}}, {Debt: models.Debt{ID: "d2"}}}, nil)

		h := debts.NewDebtsHandler(mockService)
		status := api.DebtStatusActive
		rr := httptest.NewRecorder()

		h.ListClientDebts(rr, httptest.NewRequest(http.MethodGet, "/api/clients/c1/debts", nil), "c1", api.ListClientDebtsParams{Status: &status})

		assert.Equal(t, http.StatusOK, rr.Code)
		var returned []api.DebtView
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		assert.Len(t, returned, 2)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockService := new(mocks.DebtService)
		mockService.On("DebtsForClient", mock.Anything, "nobody", models.DebtStatus("")).Once().Return(nil, ledger.NotFoundError("client", "nobody"))

		h := debts.NewDebtsHandler(mockService)
		rr := httptest.NewRecorder()

		h.ListClientDebts(rr, httptest.NewRequest(http.MethodGet, "/api/clients/nobody/debts", nil), "nobody", api.ListClientDebtsParams{})

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListPayments(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(mocks.DebtService)
		mockService.On("ListPayments", mock.Anything, "d1").Once().Return([]models.Payment{
			{ID: "p1", DebtID: "d1", Seq: 1, PaidAmount: 300, RemainingAmount: 700},
			{ID: "p2", DebtID: "d1", Seq: 2, PaidAmount: 700, RemainingAmount: 0},
		}, nil)

		h := debts.NewDebtsHandler(mockService)
		rr := httptest.NewRecorder()

		h.ListPayments(rr, httptest.NewRequest(http.MethodGet, "/api/debts/payments?debt_id=d1", nil), api.ListPaymentsParams{DebtId: "d1"})

		assert.Equal(t, http.StatusOK, rr.Code)
		var returned []api.Payment
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		require.Len(t, returned, 2)
		assert.Equal(t, int64(1), returned[0].Seq)
		assert.Equal(t, "7.00", returned[1].PaidAmount.StringFixed(2))
	})
}
