package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/chris/debt-ledger/pkg/ledger"
	"github.com/chris/debt-ledger/pkg/models"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// NewClientInput identifies a client that is not in the directory yet.
type NewClientInput struct {
	Fullname string `json:"fullname" validate:"required,max=200"`
	Phone    string `json:"phone" validate:"max=50"`
	Address  string `json:"address" validate:"max=500"`
}

// CreateDebtRequest records a debt against an existing client or a new one, never both.
type CreateDebtRequest struct {
	ClientID  string          `json:"client_id" validate:"required_without=NewClient,excluded_with=NewClient,max=64"`
	NewClient *NewClientInput `json:"new_client" validate:"required_without=ClientID"`
	Amount    decimal.Decimal `json:"amount"`
	Comment   string          `json:"comment" validate:"max=1000"`
	PhotoData string          `json:"photo_data"`
}

type RecordPaymentRequest struct {
	DebtID  string          `json:"debt_id" validate:"required,max=64"`
	Amount  decimal.Decimal `json:"paid_amount"`
	Comment string          `json:"comment" validate:"required,max=1000"`
	Rating  models.Rating   `json:"rating" validate:"omitempty,oneof=good bad untrusted"`
}

type DeleteDebtRequest struct {
	DebtID string `json:"debt_id" validate:"required,max=64"`
	Reason string `json:"comment" validate:"required,max=1000"`
}

// ListDebtsRequest filters the debt listing. Date is a calendar day; its clock reading is ignored.
type ListDebtsRequest struct {
	Status   models.DebtStatus `json:"status" validate:"omitempty,oneof=active paid deleted"`
	ClientID string            `json:"client_id" validate:"max=64"`
	Search   string            `json:"search" validate:"max=200"`
	Date     *time.Time        `json:"date"`
	SortBy   string            `json:"sort_by" validate:"omitempty,oneof=date_new date_old name amount_desc amount_asc"`
	Page     int               `json:"page" validate:"gte=0"`
	Limit    int               `json:"limit" validate:"gte=0"`
}

type ListClientsRequest struct {
	Search string     `json:"search" validate:"max=200"`
	Date   *time.Time `json:"date"`
	Page   int        `json:"page" validate:"gte=0"`
	Limit  int        `json:"limit" validate:"gte=0"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Use JSON tag names for field names in errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// check validates req and converts failures into a ledger validation error naming each field.
func (s *Ledger) check(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate request: %w", err)
	}
	msgs := make([]string, len(verrs))
	for i, e := range verrs {
		msgs[i] = e.Field() + ": " + validationMessage(e)
	}
	return ledger.ValidationError("%s", strings.Join(msgs, "; "))
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "required_without":
		return "either client_id or new_client is required"
	case "excluded_with":
		return "client_id and new_client cannot both be given"
	case "max":
		return "must be at most " + e.Param() + " characters"
	case "oneof":
		return "must be one of: " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	default:
		return "is invalid"
	}
}
