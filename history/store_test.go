package history

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graeme-hill/complexcalc-go/lib"
)

func TestEncodeTokens(t *testing.T) {
	tokens, err := lib.Tokenize("3+4i * x")
	require.NoError(t, err)

	encoded, err := EncodeTokens(tokens)
	require.NoError(t, err)
	require.Contains(t, encoded, `"type":"COMPLEX_NUMBER"`)
	require.Contains(t, encoded, `"text":"3+4i"`)
	require.Contains(t, encoded, `"type":"END_OF_FILE"`)

	decoded, err := DecodeTokens(encoded)
	require.NoError(t, err)
	require.Equal(t, tokens, decoded)
}

func TestEncodeNoTokens(t *testing.T) {
	encoded, err := EncodeTokens(nil)
	require.NoError(t, err)
	require.Equal(t, "[]", encoded)
}

func TestDecodeInvalid(t *testing.T) {
	_, err := DecodeTokens(`[{"type":"MODULO","text":"%"}]`)
	require.Error(t, err)

	_, err = DecodeTokens(`not json`)
	require.Error(t, err)
}

func TestOpenEmpty(t *testing.T) {
	_, err := Open(context.Background(), "", nil)
	require.Error(t, err)
}

func TestMigrationsOrdered(t *testing.T) {
	require.NotEmpty(t, migrations)
	for i := 1; i < len(migrations); i++ {
		require.Less(t, migrations[i-1].Name, migrations[i].Name)
	}
}
