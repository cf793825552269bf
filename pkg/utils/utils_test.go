package utils

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "1.0", FormatFloat(1))
	assert.Equal(t, "1.5", FormatFloat(1.5))
	assert.Equal(t, "-3.0", FormatFloat(-3))
	assert.Equal(t, "NaN", FormatFloat(math.NaN()))
}

func TestParseDictLiteral(t *testing.T) {
	d, err := ParseDictLiteral(`{'x': 1, 'y': "a", 'z': 2.5}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"x": 1, "y": "a", "z": 2.5}, d)
}

func TestParseDictLiteralRejectsMalformed(t *testing.T) {
	for _, literal := range []string{
		`{'x': }`,
		`{'x': 1`,
		`['x']`,
		`{'x': 1} {'y': 2}`,
		`{x: 1}`,
	} {
		_, err := ParseDictLiteral(literal)
		assert.Error(t, err, literal)
	}
}

func TestDecodeObjectKeepsIntAndFloatApart(t *testing.T) {
	obj, err := DecodeObject([]byte(`{"a": 1, "b": 1.0, "c": [2, 3.5], "d": {"e": 1e3}}`))
	require.NoError(t, err)
	assert.Equal(t, 1, obj["a"])
	assert.Equal(t, 1.0, obj["b"])
	assert.Equal(t, []any{2, 3.5}, obj["c"])
	assert.Equal(t, map[string]any{"e": 1000.0}, obj["d"])
}

func TestDecodeObjectRejectsNonObjects(t *testing.T) {
	_, err := DecodeObject([]byte(`null`))
	assert.Error(t, err)
	_, err = DecodeObject([]byte(`[1]`))
	assert.Error(t, err)
	_, err = DecodeObject([]byte(``))
	assert.Error(t, err)
}

func TestPreserveFloats(t *testing.T) {
	data, err := json.Marshal(PreserveFloats(map[string]any{
		"f":    1.0,
		"i":    1,
		"list": []any{2.0},
	}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"f": 1.0, "i": 1, "list": [2.0]}`, string(data))
	assert.Contains(t, string(data), `"f":1.0`)
}
