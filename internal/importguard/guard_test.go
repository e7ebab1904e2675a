package importguard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                 {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any)                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, args ...any)                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, args ...any)                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {
}
func (nopLogger) Panic(ctx context.Context, args ...any)                 {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                 {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any) {}

func TestGuardDuplicatePaste(t *testing.T) {
	g := New(Config{RateLimitPerMin: 600, DedupeTTL: time.Minute}, nopLogger{})

	require.NoError(t, g.Check("10.0.0.1", "01 Wed\n09:00 - 10:00\nStandup"))
	g.Remember("10.0.0.1", "01 Wed\n09:00 - 10:00\nStandup")

	err := g.Check("10.0.0.1", "01 Wed\n09:00 - 10:00\nStandup")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestGuardFailedImportDoesNotBlockRetry(t *testing.T) {
	// The fingerprint is only written by Remember, which the handler calls
	// after a successful apply. A store failure must leave the retry open.
	g := New(Config{RateLimitPerMin: 600, DedupeTTL: time.Minute}, nopLogger{})

	require.NoError(t, g.Check("10.0.0.1", "January dump"))
	assert.NoError(t, g.Check("10.0.0.1", "January dump"))
}

func TestGuardDifferentTextAllowed(t *testing.T) {
	g := New(Config{RateLimitPerMin: 600, DedupeTTL: time.Minute}, nopLogger{})

	require.NoError(t, g.Check("10.0.0.1", "January dump"))
	g.Remember("10.0.0.1", "January dump")
	require.NoError(t, g.Check("10.0.0.1", "February dump"))
}

func TestGuardDuplicateScopedToClient(t *testing.T) {
	g := New(Config{RateLimitPerMin: 600, DedupeTTL: time.Minute}, nopLogger{})

	require.NoError(t, g.Check("10.0.0.1", "same dump"))
	g.Remember("10.0.0.1", "same dump")
	assert.NoError(t, g.Check("10.0.0.2", "same dump"))
}

func TestGuardRateLimit(t *testing.T) {
	// 60/min with burst 30, so request 31 in the same instant must fail.
	g := New(Config{RateLimitPerMin: 60, DedupeTTL: time.Minute}, nopLogger{})

	var limited bool
	for i := 0; i < 40; i++ {
		if err := g.Check("10.0.0.1", string(rune('a'+i))); err != nil {
			limited = true
			assert.Contains(t, err.Error(), "too many imports")
			break
		}
	}
	assert.True(t, limited, "expected the burst to be exhausted")
}

func TestGuardDedupeExpires(t *testing.T) {
	g := New(Config{RateLimitPerMin: 600, DedupeTTL: 10 * time.Millisecond}, nopLogger{})

	require.NoError(t, g.Check("10.0.0.1", "short-lived dump"))
	g.Remember("10.0.0.1", "short-lived dump")
	time.Sleep(25 * time.Millisecond)
	assert.NoError(t, g.Check("10.0.0.1", "short-lived dump"))
}
