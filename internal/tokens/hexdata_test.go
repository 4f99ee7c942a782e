package tokens_test

import (
	"testing"

	"github.com/Mohsinsiddi/w3tokens/internal/tokens"
	"github.com/stretchr/testify/assert"
)

func TestEncodeHexEmptyIsSentinel(t *testing.T) {
	assert.Equal(t, "0x00", tokens.EncodeHex(""))
}

func TestEncodeHexText(t *testing.T) {
	assert.Equal(t, "0x74657374", tokens.EncodeHex("test"))
}

func TestEncodeHexMultibyte(t *testing.T) {
	// "é" is 0xc3 0xa9 in UTF-8.
	assert.Equal(t, "0xc3a9", tokens.EncodeHex("é"))
}

func TestDecodeHexSentinelIsEmpty(t *testing.T) {
	assert.Equal(t, "", tokens.DecodeHex("0x00"))
}

func TestDecodeHexEmptyInputs(t *testing.T) {
	assert.Equal(t, "", tokens.DecodeHex("0x"))
	assert.Equal(t, "", tokens.DecodeHex(""))
}

func TestDecodeHexWithoutPrefix(t *testing.T) {
	assert.Equal(t, "test", tokens.DecodeHex("74657374"))
}

func TestDecodeHexMixedCase(t *testing.T) {
	assert.Equal(t, "test", tokens.DecodeHex("0x74657374"))
	assert.Equal(t, "J", tokens.DecodeHex("0x4A"))
	assert.Equal(t, "J", tokens.DecodeHex("0x4a"))
}

func TestDecodeHexStripsPrefixOnce(t *testing.T) {
	// Only the first "0x" is removed; the second stops decoding at 'x'.
	assert.Equal(t, "", tokens.DecodeHex("0x0x74"))
}

func TestDecodeHexMalformedKeepsDecodedPrefix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"odd length", "0x74657", "te"},
		{"non-hex pair", "0x7465zz74", "te"},
		{"all garbage", "0xzz", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() { tokens.DecodeHex(tt.input) })
			assert.Equal(t, tt.want, tokens.DecodeHex(tt.input))
		})
	}
}

func TestDecodeHexInvalidUTF8IsReplaced(t *testing.T) {
	assert.Equal(t, "\uFFFD", tokens.DecodeHex("0xff"))
	// One replacement per invalid byte, not per run.
	assert.Equal(t, "\uFFFD\uFFFDA", tokens.DecodeHex("0xffff41"))
	assert.Equal(t, "é\uFFFD", tokens.DecodeHex("0xc3a9c3"))
}

func TestDecodeHexTwoNULsAreKept(t *testing.T) {
	// Only a lone NUL means "no data".
	assert.Equal(t, "\x00\x00", tokens.DecodeHex("0x0000"))
}

func TestHexRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"a",
		"hello world",
		"transfer memo: invoice #42",
		"日本語のテキスト",
		"emoji 🚀",
		"{\"json\":true}",
		"line1\nline2",
	}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			assert.Equal(t, s, tokens.DecodeHex(tokens.EncodeHex(s)))
		})
	}
}
