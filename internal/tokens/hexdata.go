package tokens

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// EmptyData is sent in place of an empty data argument. Gateways reject a
// zero-length "0x" value for a bytes parameter.
const EmptyData = "0x00"

// EncodeHex encodes text as a 0x-prefixed hex string.
// The empty string encodes to EmptyData.
func EncodeHex(text string) string {
	if text == "" {
		return EmptyData
	}
	return hexutil.Encode([]byte(text))
}

// DecodeHex decodes a hex payload back to text. It is lenient: the first "0x"
// is removed wherever it appears, decoding stops at the first malformed byte
// pair, and each byte that is not valid UTF-8 becomes U+FFFD. EmptyData
// decodes to "".
func DecodeHex(payload string) string {
	raw := strings.Replace(payload, "0x", "", 1)
	b, _ := hex.DecodeString(raw)
	text := string([]rune(string(b)))
	if text == "\x00" {
		return ""
	}
	return text
}
