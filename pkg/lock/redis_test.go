package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chris/debt-ledger/pkg/ledger"
	"github.com/chris/debt-ledger/pkg/lock/mocks"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRedisLocker(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.RedisClient)
		l := NewRedisLocker(mockClient, time.Second, time.Second)

		var token interface{}
		mockClient.On("SetNX", mock.Anything, "ledger:lock:debt:d1", mock.Anything, time.Second).
			Run(func(args mock.Arguments) { token = args.Get(2) }).
			Once().Return(redis.NewBoolResult(true, nil))

		release, err := l.Acquire(ctx, DebtKey("d1"))
		require.NoError(t, err)

		mockClient.On("Eval", mock.Anything, releaseScript, []string{"ledger:lock:debt:d1"}, mock.MatchedBy(func(v interface{}) bool {
			return v == token
		})).Once().Return(redis.NewCmdResult(int64(1), nil))

		release()
		release()
		mockClient.AssertExpectations(t)
	})

	t.Run("Retries Until Free", func(t *testing.T) {
		mockClient := new(mocks.RedisClient)
		l := NewRedisLocker(mockClient, time.Second, time.Second)
		l.retry = time.Millisecond

		mockClient.On("SetNX", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Twice().Return(redis.NewBoolResult(false, nil))
		mockClient.On("SetNX", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Once().Return(redis.NewBoolResult(true, nil))
		mockClient.On("Eval", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Once().Return(redis.NewCmdResult(int64(1), nil))

		release, err := l.Acquire(ctx, DebtKey("d1"))
		require.NoError(t, err)
		release()
		mockClient.AssertExpectations(t)
	})

	t.Run("Wait Budget Exceeded", func(t *testing.T) {
		mockClient := new(mocks.RedisClient)
		l := NewRedisLocker(mockClient, time.Second, 10*time.Millisecond)
		l.retry = 2 * time.Millisecond

		mockClient.On("SetNX", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(redis.NewBoolResult(false, nil))

		_, err := l.Acquire(ctx, DebtKey("d1"))
		assert.ErrorIs(t, err, ledger.ErrConcurrency)
		mockClient.AssertNotCalled(t, "Eval", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Request Deadline Is Retryable", func(t *testing.T) {
		mockClient := new(mocks.RedisClient)
		l := NewRedisLocker(mockClient, time.Second, time.Second)
		l.retry = 5 * time.Millisecond

		mockClient.On("SetNX", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(redis.NewBoolResult(false, nil))

		dctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		_, err := l.Acquire(dctx, DebtKey("d1"))
		assert.ErrorIs(t, err, ledger.ErrConcurrency)
	})

	t.Run("Redis Error", func(t *testing.T) {
		mockClient := new(mocks.RedisClient)
		l := NewRedisLocker(mockClient, time.Second, time.Second)

		mockClient.On("SetNX", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Once().Return(redis.NewBoolResult(false, errors.New("connection refused")))

		_, err := l.Acquire(ctx, DebtKey("d1"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to acquire lock")
		assert.Empty(t, ledger.CodeOf(err))
	})
}
