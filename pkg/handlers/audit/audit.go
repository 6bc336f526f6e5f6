package audit

import (
	"net/http"

	"github.com/chris/debt-ledger/pkg/api"
	"github.com/chris/debt-ledger/pkg/handlers/respond"
	"github.com/chris/debt-ledger/pkg/mapping"
	"github.com/chris/debt-ledger/pkg/service"
)

// AuditHandler holds the dependencies for audit trail handlers.
type AuditHandler struct {
	Service service.AuditService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(svc service.AuditService) *AuditHandler {
	return &AuditHandler{Service: svc}
}

func (h *AuditHandler) ListAuditEntries(w http.ResponseWriter, r *http.Request, params api.ListAuditEntriesParams) {
	var limit int
	if params.Limit != nil {
		limit = *params.Limit
	}

	entries, err := h.Service.ListAuditEntries(r.Context(), limit)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiAuditEntries(entries))
}
