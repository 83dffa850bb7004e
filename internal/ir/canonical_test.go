package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonical_KeyOrder(t *testing.T) {
	got, err := MarshalCanonical(Object{
		"seq":  Int(3),
		"kind": String("gcd"),
		"b":    Bool(true),
	})
	require.NoError(t, err)
	assert.Equal(t, `{"b":true,"kind":"gcd","seq":3}`, string(got))
}

func TestMarshalCanonical_UTF16Order(t *testing.T) {
	// U+1F600 encodes as surrogates 0xD83D 0xDE00, which sort before U+FFFD
	// in UTF-16 but after it in UTF-8.
	got, err := MarshalCanonical(Object{
		"\uFFFD":     Int(1),
		"\U0001F600": Int(2),
	})
	require.NoError(t, err)
	assert.Equal(t, "{\"\U0001F600\":2,\"\uFFFD\":1}", string(got))
}

func TestMarshalCanonical_Strings(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "abc", `"abc"`},
		{"html not escaped", "<a&b>", `"<a&b>"`},
		{"quote and backslash", `"\`, `"\"\\"`},
		{"control", "\x01\n", `"\u0001\n"`},
		{"line separator literal", "\u2028", "\"\u2028\""},
		{"nfc", "e\u0301", "\"\u00e9\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarshalCanonical(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestMarshalCanonical_Arrays(t *testing.T) {
	got, err := MarshalCanonical([]string{"1", "2"})
	require.NoError(t, err)
	assert.Equal(t, `["1","2"]`, string(got))

	got, err = MarshalCanonical([]any{"x", 7, map[string]any{"k": int64(1)}})
	require.NoError(t, err)
	assert.Equal(t, `["x",7,{"k":1}]`, string(got))
}

func TestMarshalCanonical_Rejects(t *testing.T) {
	_, err := MarshalCanonical(1.5)
	assert.ErrorContains(t, err, "floats are forbidden")

	_, err = MarshalCanonical(nil)
	assert.ErrorContains(t, err, "null is forbidden")

	_, err = MarshalCanonical(map[string]any{"x": 0.5})
	assert.ErrorContains(t, err, "floats are forbidden")

	_, err = MarshalCanonical(struct{}{})
	assert.ErrorContains(t, err, "unsupported type")
}
