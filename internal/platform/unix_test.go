//go:build !windows

package platform

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnixPlatform_Name(t *testing.T) {
	p := New()
	assert.Equal(t, "unix", p.Name())
}

func TestUnixPlatform_WrapCommand(t *testing.T) {
	p := New()
	cmd := p.WrapCommand([]string{"ls", "-l", "."}, nil)

	assert.Equal(t, "ls", filepath.Base(cmd.Args[0]))
	assert.Equal(t, []string{"-l", "."}, cmd.Args[1:])
	assert.Nil(t, cmd.Env, "nil env inherits the parent environment")
}

func TestUnixPlatform_WrapCommand_Env(t *testing.T) {
	p := New()
	env := []string{"FOO=bar"}
	cmd := p.WrapCommand([]string{"env"}, env)
	assert.Equal(t, env, cmd.Env)
}

func TestUnixPlatform_WrapCommand_Runs(t *testing.T) {
	p := New()
	out, err := p.WrapCommand([]string{"echo", "hello"}, nil).Output()
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))
}

func TestUnixPlatform_LocaleEncoding(t *testing.T) {
	p := New()
	env := map[string]string{"LANG": "en_US.UTF-8"}
	enc, err := p.LocaleEncoding(func(k string) string { return env[k] })
	require.NoError(t, err)
	assert.Equal(t, "UTF-8", enc)
}

func TestUnixPlatform_LocaleEncoding_Unset(t *testing.T) {
	p := New()
	_, err := p.LocaleEncoding(func(string) string { return "" })
	assert.ErrorIs(t, err, ErrNoLocale)
}
