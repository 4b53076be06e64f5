package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoSucceedsAfterTransientFailures(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	}, WithMaxRetries(3), WithInitialDelay(time.Millisecond))

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDoStopsOnPermanent(t *testing.T) {
	wrapped := errors.New("bad request")
	attempts := 0

	err := Do(context.Background(), func() error {
		attempts++
		return Permanent(wrapped)
	}, WithMaxRetries(5), WithInitialDelay(time.Millisecond))

	assert.Equal(t, 1, attempts)
	assert.Equal(t, wrapped, err)
}

func TestDoExhaustsRetries(t *testing.T) {
	attempts := 0
	base := errors.New("still broken")

	err := Do(context.Background(), func() error {
		attempts++
		return base
	}, WithMaxRetries(2), WithInitialDelay(time.Millisecond))

	assert.Equal(t, 3, attempts)
	assert.ErrorIs(t, err, base)
}

func TestDoAbortsDuringBackoffOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := Do(ctx, func() error {
		attempts++
		return errors.New("transient")
	}, WithMaxRetries(3), WithInitialDelay(time.Hour))

	assert.Equal(t, 1, attempts)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDoCapsTheBackoffDelay(t *testing.T) {
	attempts := 0
	start := time.Now()

	_ = Do(context.Background(), func() error {
		attempts++
		return errors.New("transient")
	}, WithMaxRetries(4), WithInitialDelay(time.Millisecond), WithMaxDelay(2*time.Millisecond))

	assert.Equal(t, 5, attempts)
	assert.Less(t, time.Since(start), time.Second)
}

func TestPermanentNilIsNil(t *testing.T) {
	assert.NoError(t, Permanent(nil))
}

func TestDoNilFunc(t *testing.T) {
	assert.Error(t, Do(context.Background(), nil))
}
