// Package encoding provides text decoding for OBJ sources written in legacy
// code pages (group names exported by Korean or Japanese tools, for example).
package encoding

import (
	"errors"
	"fmt"
	"io"
	"strings"

	xenc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned for an encoding name that cannot be resolved.
var ErrUnknownEncoding = errors.New("unknown text encoding")

// IsUTF8 reports whether name selects UTF-8 (or plain ASCII) input, which
// needs no decoding. The empty name means UTF-8.
func IsUTF8(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8", "ascii", "us-ascii":
		return true
	}
	return false
}

// Lookup resolves a WHATWG encoding label such as "euc-kr", "shift_jis" or
// "windows-1252". It returns nil for UTF-8.
func Lookup(name string) (xenc.Encoding, error) {
	if IsUTF8(name) {
		return nil, nil
	}
	enc, err := htmlindex.Get(strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// NewReader returns a reader that decodes r from the named encoding to UTF-8.
// UTF-8 input is returned unchanged.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return r, nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
