package dynamodb

import (
	"strings"

	"github.com/chris/debt-ledger/pkg/models"
)

// clientItem is the stored form of a client. ActiveDebts is maintained inside
// the same transactions that open and close debts, so it always reflects the debts table.
type clientItem struct {
	models.Client
	FullnameLower string `dynamodbav:"fullname_lower"`
	ActiveDebts   int64  `dynamodbav:"active_debts"`
}

func newClientItem(c *models.Client, activeDebts int64) clientItem {
	return clientItem{
		Client:        *c,
		FullnameLower: strings.ToLower(c.Fullname),
		ActiveDebts:   activeDebts,
	}
}

func (c clientItem) summary() models.ClientSummary {
	return models.ClientSummary{Client: c.Client, HasActiveDebt: c.ActiveDebts > 0}
}

// debtItem is the stored form of a debt, carrying the client name for search and sort.
type debtItem struct {
	models.Debt
	ClientName      string `dynamodbav:"client_name"`
	ClientNameLower string `dynamodbav:"client_name_lower"`
}

func newDebtItem(d *models.Debt, clientName string) debtItem {
	return debtItem{
		Debt:            *d,
		ClientName:      clientName,
		ClientNameLower: strings.ToLower(clientName),
	}
}
