package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.nivo.ch/panelctl/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated
// testing. It also sets NO_COLOR=1 to ensure deterministic output without
// ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return logger.NewWithWriter(buf), buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("some message")

	g := goldie.New(t)
	g.Assert(t, "info_basic", buf.Bytes())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("some warning")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Debug_HiddenByDefault(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Debug("invisible detail")

	assert.Empty(t, buf.String())
}

func TestLogger_Debug_Verbose(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetVerbose(true)
	lg.Debug("some detail")

	g := goldie.New(t)
	g.Assert(t, "debug_verbose", buf.Bytes())
}

func TestLogger_SetVerbose_Restores(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.SetVerbose(true)
	lg.Debug("shown")
	lg.SetVerbose(false)
	lg.Debug("hidden again")

	assert.Contains(t, buf.String(), "shown")
	assert.NotContains(t, buf.String(), "hidden again")
}

func TestLogger_Error_Simple(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(os.ErrPermission)

	g := goldie.New(t)
	g.Assert(t, "error_simple", buf.Bytes())
}

func TestLogger_Error_ZerrChain(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(zerr.Wrap(
		zerr.Wrap(
			errors.New("connection refused"),
			"panel request failed",
		),
		"could not list domains",
	))

	g := goldie.New(t)
	g.Assert(t, "error_chain_zerr", buf.Bytes())
}

func TestLogger_Error_StdlibChain(t *testing.T) {
	// fmt.Errorf errors expose no Message(), so the chain is not unwrapped.
	inner := errors.New("connection refused")
	outer := fmt.Errorf("panel request failed: %w", inner)

	lg, buf := newTestLogger(t)
	lg.Error(outer)

	g := goldie.New(t)
	g.Assert(t, "error_chain_stdlib", buf.Bytes())
}

func TestLogger_Error_WithMetadata(t *testing.T) {
	err := zerr.With(zerr.New("command rejected"), "command", "add_domain")

	lg, buf := newTestLogger(t)
	lg.Error(err)

	output := buf.String()
	assert.True(t, strings.HasPrefix(output, "✗ Error:"), "output: %q", output)
	assert.Contains(t, output, "command rejected")
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_New(t *testing.T) {
	require.NotNil(t, logger.New())
}
