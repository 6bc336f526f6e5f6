package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/debt-ledger/pkg/events"
	"github.com/chris/debt-ledger/pkg/events/mocks"
	"github.com/chris/debt-ledger/pkg/models"
	storagemocks "github.com/chris/debt-ledger/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func paidDebt() (*models.Debt, *models.Payment) {
	paidAt := now
	debt := &models.Debt{
		ID: "d1", ClientID: "c1", OriginalAmount: 500, RemainingAmount: 0,
		Status: models.PAID, Rating: models.RatingGood, PaidAt: &paidAt, CreatedAt: now.Add(-time.Hour),
	}
	payment := &models.Payment{ID: "p1", DebtID: "d1", Seq: 1, PaidAmount: 500, RemainingAmount: 0, Comment: "cash", CreatedAt: now}
	return debt, payment
}

func TestPaymentRecorded(t *testing.T) {
	t.Run("Closing Payment", func(t *testing.T) {
		debt, payment := paidDebt()

		out := events.PaymentRecorded(debt, payment)

		require.Len(t, out, 2)
		assert.Equal(t, events.TypePaymentRecorded, out[0].Type)
		assert.Equal(t, int64(500), out[0].Amount)
		assert.Equal(t, "cash", out[0].Comment)
		assert.Equal(t, events.TypeDebtPaid, out[1].Type)
		assert.Equal(t, models.RatingGood, out[1].Rating)
		assert.NotEqual(t, out[0].ID, out[1].ID)
	})

	t.Run("Partial Payment", func(t *testing.T) {
		debt, payment := paidDebt()
		debt.Status = models.ACTIVE
		debt.RemainingAmount = 300
		payment.PaidAmount = 200
		payment.RemainingAmount = 300

		out := events.PaymentRecorded(debt, payment)

		require.Len(t, out, 1)
		assert.Equal(t, int64(300), out[0].RemainingAmount)
	})
}

func TestDecode(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		debt, _ := paidDebt()
		in := events.DebtCreated(debt)
		body, err := json.Marshal(in)
		require.NoError(t, err)

		out, err := events.Decode(string(body))
		require.NoError(t, err)
		assert.Equal(t, in.ID, out.ID)
		assert.True(t, in.OccurredAt.Equal(out.OccurredAt))
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := events.Decode("{not json")
		assert.Error(t, err)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		_, err := events.Decode(`{"type":"debt.created"}`)
		assert.Error(t, err)
	})
}

func TestSQSPublisher(t *testing.T) {
	debt, _ := paidDebt()
	event := events.DebtCreated(debt)

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.SQSAPI)
		publisher := events.NewSQSPublisher(mockClient, "https://sqs.local/queue")

		mockClient.On("SendMessage", mock.Anything, mock.MatchedBy(func(in *sqs.SendMessageInput) bool {
			var sent events.Event
			if err := json.Unmarshal([]byte(*in.MessageBody), &sent); err != nil {
				return false
			}
			return *in.QueueUrl == "https://sqs.local/queue" &&
				sent.ID == event.ID &&
				*in.MessageAttributes["event_type"].StringValue == "debt.created"
		})).Once().Return(&sqs.SendMessageOutput{}, nil)

		err := publisher.Publish(context.Background(), event)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Send Error", func(t *testing.T) {
		mockClient := new(mocks.SQSAPI)
		publisher := events.NewSQSPublisher(mockClient, "https://sqs.local/queue")

		mockClient.On("SendMessage", mock.Anything, mock.Anything).Once().Return(nil, errors.New("throttled"))

		err := publisher.Publish(context.Background(), event)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send message to SQS")
	})
}

func TestAuditPublisher(t *testing.T) {
	debt, payment := paidDebt()
	event := events.PaymentRecorded(debt, payment)[1]

	t.Run("Success", func(t *testing.T) {
		mockStore := new(storagemocks.Storage)
		publisher := events.NewAuditPublisher(mockStore)

		mockStore.On("AppendAuditEntry", mock.Anything, mock.MatchedBy(func(e *models.AuditEntry) bool {
			return e.EntryID == event.ID && e.EventType == "debt.paid" && e.Rating == models.RatingGood
		})).Once().Return(nil)

		assert.NoError(t, publisher.Publish(context.Background(), event))
		mockStore.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockStore := new(storagemocks.Storage)
		publisher := events.NewAuditPublisher(mockStore)

		mockStore.On("AppendAuditEntry", mock.Anything, mock.Anything).Once().Return(errors.New("boom"))

		err := publisher.Publish(context.Background(), event)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "debt.paid")
	})
}
