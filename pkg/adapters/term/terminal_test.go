package term

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tendril/pkg/domain"
)

func pipeSource(t *testing.T, input string) *Source {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })

	_, err = w.WriteString(input)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	out, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	t.Cleanup(func() { out.Close() })

	return New(r, out)
}

func TestReadLineTrimsLineEndings(t *testing.T) {
	src := pipeSource(t, "hello\r\nworld\n")
	ctx := context.Background()

	got, err := src.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	got, err = src.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "world", got)
}

func TestReadLineFinalLineWithoutNewline(t *testing.T) {
	src := pipeSource(t, "dangling")

	got, err := src.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "dangling", got)
}

func TestReadLineEOFCancels(t *testing.T) {
	src := pipeSource(t, "")

	_, err := src.ReadLine(context.Background())
	require.ErrorIs(t, err, domain.ErrCancelled)
}

func TestReadSecretFallsBackOnPipes(t *testing.T) {
	src := pipeSource(t, "hunter2\n")

	got, err := src.ReadSecret(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)
}

func TestReadLineCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := pipeSource(t, "unread\n")
	_, err := src.ReadLine(ctx)
	require.ErrorIs(t, err, domain.ErrCancelled)
}

func TestPipeIsNotInteractive(t *testing.T) {
	assert.False(t, pipeSource(t, "").Interactive())
}
