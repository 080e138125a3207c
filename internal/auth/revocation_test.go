package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevocationStore(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	store := NewRevocationStore(db)
	store.now = func() time.Time { return testNow }
	ctx := context.Background()

	mock.ExpectSet(revokedTokenKeyPrefix+"jti-1", 1, time.Hour).SetVal("OK")
	require.NoError(t, store.Revoke(ctx, "jti-1", testNow.Add(time.Hour)))

	// already expired, nothing to store
	require.NoError(t, store.Revoke(ctx, "jti-2", testNow.Add(-time.Minute)))

	mock.ExpectExists(revokedTokenKeyPrefix + "jti-1").SetVal(1)
	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	mock.ExpectExists(revokedTokenKeyPrefix + "jti-3").SetVal(0)
	revoked, err = store.IsRevoked(ctx, "jti-3")
	require.NoError(t, err)
	assert.False(t, revoked)

	mock.ExpectExists(revokedTokenKeyPrefix + "jti-4").SetErr(errors.New("connection refused"))
	_, err = store.IsRevoked(ctx, "jti-4")
	assert.Error(t, err)

	mock.ExpectSet(revokedTokenKeyPrefix+"jti-5", 1, time.Minute).SetErr(errors.New("connection refused"))
	assert.Error(t, store.Revoke(ctx, "jti-5", testNow.Add(time.Minute)))

	assert.NoError(t, mock.ExpectationsWereMet())
}
