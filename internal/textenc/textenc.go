// Package textenc decodes legacy Korean input encodings to UTF-8.
package textenc

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// Decode converts raw input bytes to a UTF-8 string. Supported names are
// "utf-8" (a no-op) and "euc-kr" (Code Page 949).
func Decode(raw []byte, encoding string) (string, error) {
	switch normalize(encoding) {
	case "", "utf-8", "utf8":
		return string(raw), nil
	case "euc-kr", "euckr", "cp949":
		decoded, _, err := transform.Bytes(korean.EUCKR.NewDecoder(), raw)
		if err != nil {
			return "", fmt.Errorf("decode euc-kr: %w", err)
		}
		return string(decoded), nil
	}
	return "", fmt.Errorf("unsupported encoding %q", encoding)
}

func normalize(encoding string) string {
	return strings.ToLower(strings.TrimSpace(encoding))
}
