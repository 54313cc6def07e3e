package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryClient_SetGet(t *testing.T) {
	c := NewMemoryClient(100)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k1", []byte("v1"), time.Minute))

	val, err := c.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), val)
}

func TestMemoryClient_Miss(t *testing.T) {
	c := NewMemoryClient(100)

	_, err := c.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryClient_Expiry(t *testing.T) {
	c := NewMemoryClient(100)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k1", []byte("v1"), -time.Second))

	_, err := c.Get(ctx, "k1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryClient_DeleteByPrefix(t *testing.T) {
	c := NewMemoryClient(100)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "answer:a", []byte("1"), time.Minute))
	require.NoError(t, c.Set(ctx, "answer:b", []byte("2"), time.Minute))
	require.NoError(t, c.Set(ctx, "m:mat-001", []byte("3"), time.Minute))

	require.NoError(t, c.DeleteByPrefix(ctx, "answer:"))

	_, err := c.Get(ctx, "answer:a")
	assert.ErrorIs(t, err, ErrCacheMiss)
	_, err = c.Get(ctx, "m:mat-001")
	assert.NoError(t, err)
}

func TestMemoryClient_Eviction(t *testing.T) {
	c := NewMemoryClient(2)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k1", []byte("1"), time.Minute))
	require.NoError(t, c.Set(ctx, "k2", []byte("2"), 2*time.Minute))
	require.NoError(t, c.Set(ctx, "k3", []byte("3"), 3*time.Minute))

	// k1 had the earliest expiry and should have been evicted.
	_, err := c.Get(ctx, "k1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryClient_CloseStopsCleanup(t *testing.T) {
	c := NewMemoryClient(100)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	select {
	case <-c.done:
	default:
		t.Fatal("done channel still open after Close")
	}
}

func TestAnswerKey_Stable(t *testing.T) {
	k1 := AnswerKey("Can I use EPDM at 25F?", "mat-001")
	k2 := AnswerKey("can i use epdm at 25f?  ", "mat-001")
	k3 := AnswerKey("a different question", "mat-001")

	assert.Equal(t, k1, k2, "keys should normalize case and whitespace")
	assert.NotEqual(t, k1, k3)
}

func TestMaterialKey(t *testing.T) {
	assert.Equal(t, "m:mat-001:compat:mat-002", MaterialKey("mat-001", "compat", "mat-002"))
}
