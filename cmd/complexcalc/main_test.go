package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graeme-hill/complexcalc-go/config"
	"github.com/graeme-hill/complexcalc-go/lib"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.DSNEnvVar, "")

	out := &bytes.Buffer{}
	root := newRootCmd()
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTokenize(t *testing.T) {
	out, err := run(t, "tokenize", "(6+2i) * y - 25 / (1+i**2)")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 16)
	require.Equal(t, "Token[LEFT_PAREN, '(']", lines[0])
	require.Equal(t, "Token[COMPLEX_NUMBER, '6+2i']", lines[1])
	require.Equal(t, "Token[COMPLEX_NUMBER, 'i']", lines[11])
	require.Equal(t, "Token[POWER, '**']", lines[12])
	require.Equal(t, "Token[END_OF_FILE, '<EOF>']", lines[15])
}

func TestTokenizeJoinsArgs(t *testing.T) {
	out, err := run(t, "tokenize", "--", "-i", "+", "x")
	require.NoError(t, err)
	require.Equal(t,
		"Token[COMPLEX_NUMBER, '-i']\nToken[PLUS, '+']\nToken[VARIABLE, 'x']\nToken[END_OF_FILE, '<EOF>']\n",
		out)
}

func TestTokenizeValues(t *testing.T) {
	out, err := run(t, "tokenize", "--values", "3-4i * 3+4")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, "Token[COMPLEX_NUMBER, '3-4i'] = 3 - 4i", lines[0])
	require.Equal(t, "Token[MULTIPLY, '*']", lines[1])
	require.True(t, strings.HasPrefix(lines[2], "Token[COMPLEX_NUMBER, '3+4']  ("))
}

func TestTokenizeValuesFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "complexcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  values: true\n"), 0o644))

	out, err := run(t, "--config", path, "tokenize", "7i")
	require.NoError(t, err)
	require.Contains(t, out, "Token[COMPLEX_NUMBER, '7i'] = 7i")
}

func TestTokenizeJSON(t *testing.T) {
	out, err := run(t, "tokenize", "--json", "5+x")
	require.NoError(t, err)
	require.Equal(t,
		`[{"type":"COMPLEX_NUMBER","text":"5","pos":0},{"type":"PLUS","text":"+","pos":1},{"type":"VARIABLE","text":"x","pos":2},{"type":"END_OF_FILE","text":"<EOF>","pos":3}]`,
		strings.TrimSpace(out))
}

func TestTokenizeLexicalError(t *testing.T) {
	out, err := run(t, "tokenize", "@")
	var lexErr *lib.LexicalError
	require.True(t, errors.As(err, &lexErr))
	require.Equal(t, 0, lexErr.Pos)
	require.Empty(t, out)
}

func TestTokenizeRecordWithoutDSN(t *testing.T) {
	_, err := run(t, "tokenize", "--record", "1+1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "open history")
}

func TestCalc(t *testing.T) {
	cases := []struct {
		args     []string
		expected string
	}{
		{[]string{"sum", "3+4i", "1-2i"}, "4 + 2i"},
		{[]string{"sub", "3+4i", "1-2i"}, "2 + 6i"},
		{[]string{"mul", "3+4i", "1-2i"}, "11 - 2i"},
		{[]string{"div", "3+4i", "1-2i"}, "-1 + 2i"},
		{[]string{"conj", "3+4i"}, "3 - 4i"},
		{[]string{"mag", "3+4i"}, "5"},
		{[]string{"phase", "i"}, "1.5707963268"},
		{[]string{"pow", "3+4i", "2"}, "-7 + 24i"},
		{[]string{"root", "3+4i", "2"}, "2 + i"},
		{[]string{"mul", "--", "-i", "2"}, "-2i"},
	}
	for _, c := range cases {
		out, err := run(t, append([]string{"calc"}, c.args...)...)
		require.NoError(t, err, "%v", c.args)
		require.Equal(t, c.expected+"\n", out, "%v", c.args)
	}
}

func TestCalcErrors(t *testing.T) {
	_, err := run(t, "calc", "div", "3+4i", "0")
	require.True(t, errors.Is(err, lib.ErrDivisionByZero))

	_, err = run(t, "calc", "root", "3+4i", "0")
	require.True(t, errors.Is(err, lib.ErrInvalidArgument))

	_, err = run(t, "calc", "root", "3+4i", "1.5")
	require.Error(t, err)

	_, err = run(t, "calc", "sum", "3+4i")
	require.Error(t, err)

	_, err = run(t, "calc", "conj", "3+4i", "2")
	require.Error(t, err)

	_, err = run(t, "calc", "mod", "3", "2")
	require.Error(t, err)

	_, err = run(t, "calc", "sum", "x", "2")
	require.Error(t, err)

	_, err = run(t, "calc", "sum", "3+4", "2")
	require.True(t, errors.Is(err, lib.ErrMalformedLiteral))
}

func TestMigrateWithoutDSN(t *testing.T) {
	_, err := run(t, "migrate")
	require.Error(t, err)
}

func TestHistoryBadLimit(t *testing.T) {
	_, err := run(t, "history", "--limit", "0")
	require.Error(t, err)
}
