package jax

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCloser struct {
	err   error
	calls int
}

func (s *stubCloser) Close() error {
	s.calls++
	return s.err
}

func TestCloseWithLog(t *testing.T) {
	tests := []struct {
		name     string
		closeErr error
		wantLog  []string
	}{
		{
			name: "successful close is silent",
		},
		{
			name:     "close error is logged at warn",
			closeErr: errors.New("file already closed"),
			wantLog:  []string{"level=WARN", "failed to close resource", "symbol file", "file already closed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			closer := &stubCloser{err: tt.closeErr}

			CloseWithLog(closer, logger, "symbol file")

			assert.Equal(t, 1, closer.calls)
			if len(tt.wantLog) == 0 {
				assert.Empty(t, buf.String())
			}
			for _, want := range tt.wantLog {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestCloseWithLog_NilArguments(t *testing.T) {
	require.NotPanics(t, func() {
		CloseWithLog(nil, nil, "nothing")
	})

	closer := &stubCloser{err: errors.New("boom")}
	require.NotPanics(t, func() {
		CloseWithLog(closer, nil, "default logger")
	})
	assert.Equal(t, 1, closer.calls)
}
