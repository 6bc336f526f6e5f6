package main

import (
	"context"
	"log"

	awsevents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/chris/debt-ledger/pkg/config"
	"github.com/chris/debt-ledger/pkg/events"
	"github.com/chris/debt-ledger/pkg/storage"
	"github.com/chris/debt-ledger/pkg/storage/backend"
)

// auditConsumer turns ledger events from SQS into audit trail rows.
type auditConsumer struct {
	store storage.AuditWriter
}

// HandleRequest appends one audit entry per message. Failed messages are reported back to SQS
// individually so the rest of the batch is not redelivered.
func (c *auditConsumer) HandleRequest(ctx context.Context, sqsEvent awsevents.SQSEvent) (awsevents.SQSEventResponse, error) {
	var resp awsevents.SQSEventResponse

	for _, message := range sqsEvent.Records {
		ev, err := events.Decode(message.Body)
		if err != nil {
			log.Printf("ERROR: failed to decode event from SQS message %s: %v", message.MessageId, err)
			resp.BatchItemFailures = append(resp.BatchItemFailures, awsevents.SQSBatchItemFailure{ItemIdentifier: message.MessageId})
			continue
		}

		if err := c.store.AppendAuditEntry(ctx, ev.AuditEntry()); err != nil {
			log.Printf("ERROR: failed to append audit entry for event %s (%s): %v", ev.ID, ev.Type, err)
			resp.BatchItemFailures = append(resp.BatchItemFailures, awsevents.SQSBatchItemFailure{ItemIdentifier: message.MessageId})
			continue
		}

		log.Printf("Recorded %s for debt %s", ev.Type, ev.DebtID)
	}

	return resp, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	store, closeStore, err := backend.Open(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	defer closeStore()

	consumer := &auditConsumer{store: store}
	lambda.Start(consumer.HandleRequest)
}
