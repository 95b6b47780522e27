package upstream

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatherRunsAllOnSuccess(t *testing.T) {
	var a, b, c int
	err := Gather(context.Background(),
		func(ctx context.Context) error { a = 1; return nil },
		func(ctx context.Context) error { b = 2; return nil },
		func(ctx context.Context) error { c = 3; return nil },
	)
	require.NoError(t, err)
	assert.Equal(t, 6, a+b+c)
}

func TestGatherFirstFailureCancelsTheRest(t *testing.T) {
	boom := errors.New("boom")
	var canceled bool

	err := Gather(context.Background(),
		func(ctx context.Context) error { return boom },
		func(ctx context.Context) error {
			select {
			case <-ctx.Done():
				canceled = true
				return ctx.Err()
			case <-time.After(2 * time.Second):
				return nil
			}
		},
	)
	assert.ErrorIs(t, err, boom)
	assert.True(t, canceled)
}
