package services

import (
	"context"
	"errors"
	"testing"

	"github.com/SebasDosman/vortex-bird-test/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWithTransaction_Success(t *testing.T) {
	ctx := context.Background()
	mockTxMgr := new(MockTransactionManager)
	mockTx := new(MockTransaction)

	mockTxMgr.On("Begin", ctx).Return(mockTx, nil)
	mockTx.On("Commit").Return(nil)

	err := WithTransaction(ctx, mockTxMgr, func(ctx context.Context, tx repositories.Transaction) error {
		got, ok := repositories.TransactionFromContext(ctx)
		require.True(t, ok)
		assert.Same(t, mockTx, got)
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, mockTx.committed)
	assert.False(t, mockTx.rolledback)
	mockTxMgr.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}

func TestWithTransaction_ErrorInFunction(t *testing.T) {
	ctx := context.Background()
	mockTxMgr := new(MockTransactionManager)
	mockTx := new(MockTransaction)
	expectedErr := errors.New("operation failed")

	mockTxMgr.On("Begin", ctx).Return(mockTx, nil)
	mockTx.On("Rollback").Return(nil)

	err := WithTransaction(ctx, mockTxMgr, func(ctx context.Context, tx repositories.Transaction) error {
		return expectedErr
	})

	assert.Equal(t, expectedErr, err)
	assert.False(t, mockTx.committed)
	assert.True(t, mockTx.rolledback)
	mockTxMgr.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}

func TestWithTransaction_BeginError(t *testing.T) {
	ctx := context.Background()
	mockTxMgr := new(MockTransactionManager)

	mockTxMgr.On("Begin", ctx).Return(nil, errors.New("pool exhausted"))

	err := WithTransaction(ctx, mockTxMgr, func(ctx context.Context, tx repositories.Transaction) error {
		t.Fatal("fn must not run")
		return nil
	})

	assert.ErrorContains(t, err, "failed to begin transaction")
	mockTxMgr.AssertExpectations(t)
}

func TestWithTransaction_RollbackError(t *testing.T) {
	ctx := context.Background()
	mockTxMgr := new(MockTransactionManager)
	mockTx := new(MockTransaction)

	mockTxMgr.On("Begin", ctx).Return(mockTx, nil)
	rbErr := errors.New("rollback failed")
	mockTx.On("Rollback").Return(rbErr)

	err := WithTransaction(ctx, mockTxMgr, func(ctx context.Context, tx repositories.Transaction) error {
		return Conflictf("The user with phone: %s already exists", "3001234567")
	})

	assert.ErrorContains(t, err, "transaction error")
	assert.ErrorContains(t, err, "rollback error")
	assert.ErrorIs(t, err, rbErr)
	assert.True(t, IsConflictError(err))
	assert.Equal(t, "The user with phone: 3001234567 already exists", GetErrorMessage(err))
	assert.True(t, mockTx.rolledback)
}

func TestWithTransaction_RollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	mockTxMgr := new(MockTransactionManager)
	mockTx := new(MockTransaction)

	mockTxMgr.On("Begin", ctx).Return(mockTx, nil)
	mockTx.On("Rollback").Return(nil)

	assert.Panics(t, func() {
		_ = WithTransaction(ctx, mockTxMgr, func(ctx context.Context, tx repositories.Transaction) error {
			panic("boom")
		})
	})
	assert.True(t, mockTx.rolledback)
	assert.False(t, mockTx.committed)
}

func TestWithTransactionResult_CommitError(t *testing.T) {
	ctx := context.Background()
	mockTxMgr := new(MockTransactionManager)
	mockTx := new(MockTransaction)

	mockTxMgr.On("Begin", ctx).Return(mockTx, nil)
	mockTx.On("Commit").Return(errors.New("commit failed"))

	result, err := WithTransactionResult(ctx, mockTxMgr, func(ctx context.Context, tx repositories.Transaction) (int, error) {
		return 42, nil
	})

	assert.ErrorContains(t, err, "failed to commit transaction")
	assert.Equal(t, 42, result)
	assert.True(t, mockTx.committed)
}

func TestWithTransactionResult_JoinsOuterTransaction(t *testing.T) {
	mockTxMgr := new(MockTransactionManager)
	outer := new(MockTransaction)

	mockTxMgr.On("Begin", mock.Anything).Return(outer, nil).Once()
	outer.On("Commit").Return(nil).Once()

	result, err := WithTransactionResult(context.Background(), mockTxMgr, func(ctx context.Context, tx repositories.Transaction) (string, error) {
		return WithTransactionResult(ctx, mockTxMgr, func(ctx context.Context, inner repositories.Transaction) (string, error) {
			assert.Same(t, tx, inner)
			return "nested", nil
		})
	})

	require.NoError(t, err)
	assert.Equal(t, "nested", result)
	mockTxMgr.AssertNumberOfCalls(t, "Begin", 1)
	outer.AssertNumberOfCalls(t, "Commit", 1)
}
