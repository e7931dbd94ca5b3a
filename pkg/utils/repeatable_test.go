package repeatable

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoWithTries(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name      string
		failFirst int
		attempts  int
		wantCalls int
		wantErr   bool
	}{
		{name: "first try", failFirst: 0, attempts: 3, wantCalls: 1},
		{name: "succeeds on last try", failFirst: 2, attempts: 3, wantCalls: 3},
		{name: "exhausted", failFirst: 5, attempts: 3, wantCalls: 3, wantErr: true},
		{name: "zero attempts means one", failFirst: 5, attempts: 0, wantCalls: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := DoWithTries(context.Background(), func(context.Context) error {
				calls++
				if calls <= tt.failFirst {
					return errBoom
				}
				return nil
			}, tt.attempts, time.Millisecond)

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errBoom)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDoWithTriesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := DoWithTries(ctx, func(context.Context) error {
		calls++
		return errors.New("unavailable")
	}, 5, time.Hour)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
