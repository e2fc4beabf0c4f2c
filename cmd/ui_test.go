package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUI_QuietSuppressesSuccessOnly(t *testing.T) {
	t.Setenv("ANANSI_COLOR", "0")
	var buf bytes.Buffer
	u := newUI(&buf, true)

	u.Successf("done")
	u.Warningf("careful")
	u.Errorf("broken")

	assert.NotContains(t, buf.String(), "done")
	assert.Contains(t, buf.String(), "anansi: warning: careful\n")
	assert.Contains(t, buf.String(), "anansi: broken\n")
}

func TestUI_NoColorByDefaultForBuffers(t *testing.T) {
	t.Setenv("ANANSI_COLOR", "")
	var buf bytes.Buffer
	u := newUI(&buf, false)

	u.Successf("plain")
	assert.Equal(t, "✓ plain\n", buf.String())
}

func TestUI_ForcedColor(t *testing.T) {
	t.Setenv("ANANSI_COLOR", "on")
	var buf bytes.Buffer
	u := newUI(&buf, false)

	u.Errorf("red")
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	t.Setenv("ANANSI_COLOR", "yes")
	assert.True(t, colorEnabled(&buf))

	t.Setenv("ANANSI_COLOR", "off")
	assert.False(t, colorEnabled(&buf))

	t.Setenv("ANANSI_COLOR", "")
	t.Setenv("NO_COLOR", "1")
	assert.False(t, colorEnabled(&buf))
}
