package decimal

import (
	"bytes"
	"io"
	"strings"
)

type buffer struct{ bytes.Buffer }

type writer interface {
	io.Writer
	io.ByteWriter
	WriteString(string) (int, error)
	String() string
}

// trimFraction drops trailing zeros after the radix, and the radix itself
// when nothing follows it.
func trimFraction(s string) string {
	if strings.IndexByte(s, '.') < 0 {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
