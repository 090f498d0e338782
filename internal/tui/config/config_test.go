package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"zikkycal.dev/zikkycal/internal/config"
	"zikkycal.dev/zikkycal/internal/errors"
	"zikkycal.dev/zikkycal/internal/tui"
)

func TestTUIActionNonInteractive(t *testing.T) {
	t.Setenv("ZIKKYCAL_TEST_NO_INTERACTIVE", "1")

	var buf bytes.Buffer
	splog, err := tui.NewSplogWithWriter(&buf, "", "")
	require.NoError(t, err)

	err = TUIAction(splog)
	require.ErrorIs(t, err, errors.ErrInteractiveDisabled)
	require.Empty(t, buf.String())
}

func TestAskValueUnknownKey(t *testing.T) {
	_, err := askValue("colour", "")
	require.ErrorIs(t, err, errors.ErrUnknownConfigKey)
	require.NotContains(t, config.Keys(), "colour")
}
