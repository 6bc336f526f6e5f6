package main

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/chris/debt-ledger/pkg/config"
	"github.com/chris/debt-ledger/pkg/reconcile"
	"github.com/chris/debt-ledger/pkg/storage/backend"
)

var store reconcile.Store

// HandleRequest is triggered by an EventBridge Schedule.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting ledger reconciliation...")

	report, err := reconcile.Run(ctx, store, reconcile.DefaultPageSize)
	if err != nil {
		log.Printf("ERROR: reconciliation failed: %v", err)
		return err
	}

	for _, v := range report.Violations {
		log.Printf("VIOLATION: %s", v)
	}

	log.Printf("Checked %d debts, found %d violations.", report.DebtsChecked, len(report.Violations))
	if len(report.Violations) > 0 {
		return fmt.Errorf("found %d ledger violations", len(report.Violations))
	}
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	s, closeStore, err := backend.Open(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	defer closeStore()

	store = s
	lambda.Start(HandleRequest)
}
