package json

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalPrettyKeepsAccentsAndMarkup(t *testing.T) {
	out, err := MarshalPretty(map[string]string{"empresa": "Gonçalves & Filhos <ME>"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"empresa\": \"Gonçalves & Filhos <ME>\"\n}\n", string(out))
}

func TestDecodeNumbers(t *testing.T) {
	var v map[string]interface{}
	require.NoError(t, DecodeNumbers(strings.NewReader(`{"idade":42,"salario":1234.56}`), &v))
	assert.Equal(t, Number("42"), v["idade"])
	assert.Equal(t, Number("1234.56"), v["salario"])
}

func TestMarshalCompact(t *testing.T) {
	out, err := Marshal([]int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "[1,2]", string(out))
}
