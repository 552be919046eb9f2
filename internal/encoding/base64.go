package encoding

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when decoded bytes are not valid UTF-8 text
var ErrInvalidUTF8 = errors.New("decoded bytes are not valid UTF-8")

// EncodeBase64 encodes the UTF-8 bytes of text with the standard padded alphabet
func EncodeBase64(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// DecodeBase64 decodes standard padded base64 into UTF-8 text. Whitespace
// anywhere in the input, such as line wrapping, is ignored.
func DecodeBase64(encoded string) (string, error) {
	encoded = strings.Join(strings.Fields(encoded), "")
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("invalid base64 input: %w", err)
	}
	if !utf8.Valid(decoded) {
		return "", ErrInvalidUTF8
	}
	return string(decoded), nil
}
