package dynamodb

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// isConflict reports whether a write failed because a condition check or a competing transaction rejected it.
func isConflict(err error) bool {
	var condCheckFailed *types.ConditionalCheckFailedException
	if errors.As(err, &condCheckFailed) {
		return true
	}

	var conflict *types.TransactionConflictException
	if errors.As(err, &conflict) {
		return true
	}

	var txc *types.TransactionCanceledException
	if errors.As(err, &txc) {
		for _, reason := range txc.CancellationReasons {
			switch aws.ToString(reason.Code) {
			case "ConditionalCheckFailed", "TransactionConflict":
				return true
			}
		}
	}
	return false
}
