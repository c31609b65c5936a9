package common

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureRequestID_KeepsExisting(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	got, id := EnsureRequestID(ctx)
	assert.Equal(t, "req-1", id)
	assert.Equal(t, ctx, got)
}

func TestEnsureRequestID_GeneratesUUID(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))

	ctx, id := EnsureRequestID(context.Background())
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, RequestIDFromContext(ctx))
}
