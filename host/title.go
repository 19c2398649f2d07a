package host

import (
	"bytes"

	"golang.org/x/text/encoding/charmap"
)

// DecodeTitle converts an engine title, a NUL-terminated code page 437 byte
// string, to UTF-8. Bytes after the first NUL are ignored.
func DecodeTitle(raw []byte) string {
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	s, err := charmap.CodePage437.NewDecoder().Bytes(raw)
	if err != nil {
		// CP437 maps every byte, so this is not expected.
		return string(bytes.ToValidUTF8(raw, []byte("?")))
	}
	return string(s)
}
