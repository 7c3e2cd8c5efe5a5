package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PHONE_RULES_FILE", "")
	t.Setenv("PHONE_DEFAULT_REGION", "")

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestFormatArgs(t *testing.T) {
	out, err := run(t, "", "format", "+8615633944345", "15633944345")
	require.NoError(t, err)
	assert.Equal(t, "+86 156-3394-4345\n156-3394-4345\n", out)
}

func TestFormatStdinWithDelZero(t *testing.T) {
	out, err := run(t, "+860156-3394-4345\n\n  +86 (0)156 3394 4345  \n", "format", "--del-zero")
	require.NoError(t, err)
	assert.Equal(t, "+86 156-3394-4345\n+86 156-3394-4345\n", out)
}

func TestStripAndDelZero(t *testing.T) {
	out, err := run(t, "", "strip", "+86 156-3394-4345")
	require.NoError(t, err)
	assert.Equal(t, "+8615633944345\n", out)

	out, err = run(t, "", "del-zero", "+860156334345")
	require.NoError(t, err)
	assert.Equal(t, "+86156334345\n", out)
}

func TestValidate(t *testing.T) {
	out, err := run(t, "", "validate", "15633944345")
	require.NoError(t, err)
	assert.Equal(t, "valid\t15633944345\n", out)

	out, err = run(t, "15633944345\n123\n", "validate")
	require.ErrorIs(t, err, ErrInvalidNumbers)
	assert.Equal(t, "valid\t15633944345\ninvalid\t123\n", out)
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "", "describe", "+86 156-3394-4345")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "+8615633944345\tCN\t"), out)

	_, err = run(t, "", "describe", "nonsense")
	require.Error(t, err)
}

func TestRulesFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("separator: \" \"\n"), 0o600))

	out, err := run(t, "", "--rules", path, "format", "+8615633944345")
	require.NoError(t, err)
	assert.Equal(t, "+86 156 3394 4345\n", out)

	_, err = run(t, "", "--rules", filepath.Join(t.TempDir(), "missing.yaml"), "format", "1")
	require.Error(t, err)
}
