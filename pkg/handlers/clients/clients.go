package clients

import (
	"net/http"

	"github.com/chris/debt-ledger/pkg/api"
	"github.com/chris/debt-ledger/pkg/handlers/respond"
	"github.com/chris/debt-ledger/pkg/mapping"
	"github.com/chris/debt-ledger/pkg/service"
)

// ClientsHandler holds the dependencies for client directory handlers.
type ClientsHandler struct {
	Service service.ClientService
}

// NewClientsHandler creates a new ClientsHandler.
func NewClientsHandler(svc service.ClientService) *ClientsHandler {
	return &ClientsHandler{Service: svc}
}

// SearchClients finds clients whose name contains q.
func (h *ClientsHandler) SearchClients(w http.ResponseWriter, r *http.Request, params api.SearchClientsParams) {
	var q string
	if params.Q != nil {
		q = *params.Q
	}

	found, err := h.Service.SearchClients(r.Context(), q)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiClientSummaries(found))
}

func (h *ClientsHandler) ListClients(w http.ResponseWriter, r *http.Request, params api.ListClientsParams) {
	req := service.ListClientsRequest{}
	if params.Search != nil {
		req.Search = *params.Search
	}
	if params.Date != nil {
		d := params.Date.Time
		req.Date = &d
	}
	if params.Page != nil {
		req.Page = *params.Page
	}
	if params.Limit != nil {
		req.Limit = *params.Limit
	}

	page, err := h.Service.ListClients(r.Context(), req)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiClientPage(page))
}
