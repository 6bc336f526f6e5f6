package debts

import (
	"net/http"
	"time"

	"github.com/chris/debt-ledger/pkg/api"
	"github.com/chris/debt-ledger/pkg/handlers/respond"
	"github.com/chris/debt-ledger/pkg/mapping"
	"github.com/chris/debt-ledger/pkg/models"
	"github.com/chris/debt-ledger/pkg/service"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// DebtsHandler holds the dependencies for debt-related handlers.
type DebtsHandler struct {
	Service service.DebtService
}

// NewDebtsHandler creates a new DebtsHandler.
func NewDebtsHandler(svc service.DebtService) *DebtsHandler {
	return &DebtsHandler{Service: svc}
}

// CreateDebt handles the logic for recording a new debt.
func (h *DebtsHandler) CreateDebt(w http.ResponseWriter, r *http.Request) {
	var body api.NewDebt
	if err := respond.DecodeBody(r, &body); err != nil {
		respond.Error(w, r, err)
		return
	}

	req := service.CreateDebtRequest{
		ClientID:  deref(body.ClientId),
		Amount:    body.Amount,
		Comment:   deref(body.Comment),
		PhotoData: deref(body.PhotoData),
	}
	if body.NewClient != nil {
		req.NewClient = &service.NewClientInput{
			Fullname: body.NewClient.Fullname,
			Phone:    deref(body.NewClient.Phone),
			Address:  deref(body.NewClient.Address),
		}
	}

	debt, err := h.Service.CreateDebt(r.Context(), req)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, mapping.ToApiDebt(debt))
}

// PayDebt records a payment and returns the updated debt with the payment row.
func (h *DebtsHandler) PayDebt(w http.ResponseWriter, r *http.Request) {
	var body api.PaymentRequest
	if err := respond.DecodeBody(r, &body); err != nil {
		respond.Error(w, r, err)
		return
	}

	req := service.RecordPaymentRequest{
		DebtID:  body.DebtId,
		Amount:  body.PaidAmount,
		Comment: body.Comment,
	}
	if body.Rating != nil {
		req.Rating = models.Rating(*body.Rating)
	}

	debt, payment, err := h.Service.RecordPayment(r.Context(), req)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiPaymentResult(debt, payment))
}

func (h *DebtsHandler) DeleteDebt(w http.ResponseWriter, r *http.Request) {
	var body api.DeleteDebtRequest
	if err := respond.DecodeBody(r, &body); err != nil {
		respond.Error(w, r, err)
		return
	}

	debt, err := h.Service.DeleteDebt(r.Context(), service.DeleteDebtRequest{DebtID: body.DebtId, Reason: body.Comment})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiDebt(debt))
}

func (h *DebtsHandler) ListDebts(w http.ResponseWriter, r *http.Request, params api.ListDebtsParams) {
	req := service.ListDebtsRequest{
		Search:   deref(params.Search),
		ClientID: deref(params.ClientId),
		Date:     day(params.Date),
		Page:     derefInt(params.Page),
		Limit:    derefInt(params.Limit),
	}
	if params.Status != nil {
		req.Status = models.DebtStatus(*params.Status)
	}
	if params.SortBy != nil {
		req.SortBy = string(*params.SortBy)
	}

	page, err := h.Service.ListDebts(r.Context(), req)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiDebtPage(page))
}

// ListClientDebts returns every debt of one client, optionally narrowed to a status.
func (h *DebtsHandler) ListClientDebts(w http.ResponseWriter, r *http.Request, clientId string, params api.ListClientDebtsParams) {
	var status models.DebtStatus
	if params.Status != nil {
		status = models.DebtStatus(*params.Status)
	}

	views, err := h.Service.DebtsForClient(r.Context(), clientId, status)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiDebtViews(views))
}

func (h *DebtsHandler) ListPayments(w http.ResponseWriter, r *http.Request, params api.ListPaymentsParams) {
	payments, err := h.Service.ListPayments(r.Context(), params.DebtId)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiPayments(payments))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func day(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
