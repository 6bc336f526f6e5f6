package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chris/debt-ledger/pkg/events"
	"github.com/chris/debt-ledger/pkg/ledger"
	"github.com/chris/debt-ledger/pkg/lock"
	"github.com/chris/debt-ledger/pkg/mapping"
	"github.com/chris/debt-ledger/pkg/models"
	"github.com/chris/debt-ledger/pkg/photos"
	"github.com/chris/debt-ledger/pkg/storage"
	"github.com/google/uuid"
)

// CreateDebt records a new active debt. A new client must be photographed; an existing
// client's stored photo is replaced when a new one is supplied.
func (s *Ledger) CreateDebt(ctx context.Context, req CreateDebtRequest) (*models.Debt, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	amount, err := mapping.ToMinor(req.Amount)
	if err != nil {
		return nil, err
	}

	now := s.now()
	in := storage.NewDebt{}
	var fullname string

	if req.NewClient != nil {
		fullname = strings.TrimSpace(req.NewClient.Fullname)
		if fullname == "" {
			return nil, ledger.ValidationError("fullname: is required")
		}
		if strings.TrimSpace(req.PhotoData) == "" {
			return nil, ledger.ValidationError("photo_data: a photo is required for a new client")
		}
		in.NewClient = true
		in.Client = &models.Client{
			ID:         uuid.New().String(),
			Fullname:   fullname,
			Phone:      strings.TrimSpace(req.NewClient.Phone),
			Address:    strings.TrimSpace(req.NewClient.Address),
			Reputation: models.ReputationNew,
			CreatedAt:  now,
		}
	} else {
		client, err := s.store.GetClient(ctx, req.ClientID)
		if err != nil {
			return nil, err
		}
		in.Client = client
		fullname = client.Fullname
	}

	debt, err := ledger.NewDebt(in.Client.ID, amount, req.Comment, now)
	if err != nil {
		return nil, err
	}
	in.Debt = debt

	ref, uploaded, err := s.storePhoto(ctx, fullname, req.PhotoData)
	if err != nil {
		return nil, err
	}
	if in.NewClient {
		in.Client.PhotoRef = ref
	} else {
		in.PhotoRef = ref
	}

	created, err := s.store.CreateDebt(ctx, in)
	if err != nil {
		if uploaded {
			s.discardPhoto(ctx, ref)
		}
		return nil, err
	}

	s.logger.Info("debt created", "debt_id", created.ID, "client_id", created.ClientID, "new_client", in.NewClient, "amount", created.OriginalAmount)
	s.publish(ctx, events.DebtCreated(created))
	return created, nil
}

// storePhoto returns the reference to save on the client and whether it was uploaded by this call.
// Existing references are kept as they are.
func (s *Ledger) storePhoto(ctx context.Context, fullname, data string) (string, bool, error) {
	data = strings.TrimSpace(data)
	if data == "" {
		return "", false, nil
	}
	if photos.IsReference(data) {
		return data, false, nil
	}
	if s.photos == nil {
		return "", false, ledger.ValidationError("photo_data: photo uploads are not enabled")
	}

	image, err := photos.DecodeDataURL(data)
	if err != nil {
		if errors.Is(err, photos.ErrInvalidImage) {
			return "", false, ledger.ValidationError("photo_data: %v", err)
		}
		return "", false, err
	}
	ref, err := s.photos.Save(ctx, fullname, image)
	if err != nil {
		return "", false, fmt.Errorf("failed to store client photo: %w", err)
	}
	return ref, true, nil
}

// discardPhoto removes a photo whose debt was never written.
func (s *Ledger) discardPhoto(ctx context.Context, ref string) {
	if err := s.photos.Delete(context.WithoutCancel(ctx), ref); err != nil {
		s.logger.Warn("failed to remove orphaned photo", "ref", ref, "error", err)
	}
}

// RecordPayment applies a payment while holding the debt's lock.
func (s *Ledger) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*models.Debt, *models.Payment, error) {
	if err := s.check(req); err != nil {
		return nil, nil, err
	}
	amount, err := mapping.ToMinor(req.Amount)
	if err != nil {
		return nil, nil, err
	}

	release, err := s.locker.Acquire(ctx, lock.DebtKey(req.DebtID))
	if err != nil {
		return nil, nil, err
	}
	defer release()

	debt, payment, err := s.store.RecordPayment(ctx, req.DebtID, ledger.PaymentInput{
		Amount:  amount,
		Comment: req.Comment,
		Rating:  req.Rating,
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("payment recorded", "debt_id", debt.ID, "paid_amount", payment.PaidAmount, "remaining_amount", payment.RemainingAmount, "status", debt.Status)
	s.publish(ctx, events.PaymentRecorded(debt, payment)...)
	return debt, payment, nil
}

// DeleteDebt soft-deletes an active debt while holding its lock.
func (s *Ledger) DeleteDebt(ctx context.Context, req DeleteDebtRequest) (*models.Debt, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	release, err := s.locker.Acquire(ctx, lock.DebtKey(req.DebtID))
	if err != nil {
		return nil, err
	}
	defer release()

	debt, err := s.store.DeleteDebt(ctx, req.DebtID, req.Reason)
	if err != nil {
		return nil, err
	}

	s.logger.Info("debt deleted", "debt_id", debt.ID, "reason", debt.DeleteComment)
	s.publish(ctx, events.DebtDeleted(debt))
	return debt, nil
}

func (s *Ledger) ListDebts(ctx context.Context, req ListDebtsRequest) (*models.Page[models.DebtView], error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = models.SortDateNew
	}

	return s.store.ListDebts(ctx, models.DebtFilter{
		Status:   req.Status,
		ClientID: req.ClientID,
		Search:   strings.TrimSpace(req.Search),
		Date:     dayRange(req.Date, s.location),
		SortBy:   sortBy,
		Page:     page,
		Limit:    clampLimit(req.Limit, DefaultDebtLimit),
	})
}

// DebtsForClient returns up to ClientDebtsLimit of a client's debts, newest first.
func (s *Ledger) DebtsForClient(ctx context.Context, clientID string, status models.DebtStatus) ([]models.DebtView, error) {
	if status != "" && !status.Valid() {
		return nil, ledger.ValidationError("status: must be one of: active paid deleted")
	}
	if _, err := s.store.GetClient(ctx, clientID); err != nil {
		return nil, err
	}

	page, err := s.store.ListDebts(ctx, models.DebtFilter{
		ClientID: clientID,
		Status:   status,
		SortBy:   models.SortDateNew,
		Page:     1,
		Limit:    ClientDebtsLimit,
	})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// ListPayments returns a debt's payment history, oldest first.
func (s *Ledger) ListPayments(ctx context.Context, debtID string) ([]models.Payment, error) {
	if strings.TrimSpace(debtID) == "" {
		return nil, ledger.ValidationError("debt_id: is required")
	}
	if _, err := s.store.GetDebt(ctx, debtID); err != nil {
		return nil, err
	}
	return s.store.ListPayments(ctx, debtID)
}
