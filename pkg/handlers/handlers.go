package handlers

import (
	"github.com/chris/debt-ledger/pkg/api"
	"github.com/chris/debt-ledger/pkg/handlers/audit"
	"github.com/chris/debt-ledger/pkg/handlers/clients"
	"github.com/chris/debt-ledger/pkg/handlers/debts"
	"github.com/chris/debt-ledger/pkg/service"
)

// ApiHandler implements the generated server interface by composing the resource handlers.
type ApiHandler struct {
	*debts.DebtsHandler
	*clients.ClientsHandler
	*audit.AuditHandler
}

// NewApiHandler creates a new ApiHandler backed by svc.
func NewApiHandler(svc service.Service) *ApiHandler {
	return &ApiHandler{
		DebtsHandler:   debts.NewDebtsHandler(svc),
		ClientsHandler: clients.NewClientsHandler(svc),
		AuditHandler:   audit.NewAuditHandler(svc),
	}
}

// Make sure we conform to the interface
var _ api.ServerInterface = (*ApiHandler)(nil)
