// Package encoding provides text decoding for names embedded in game asset files.
package encoding

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// DecodeName converts raw name bytes to a UTF-8 string. Names are UTF-8 in
// current asset builds, but files produced by the older Japanese toolchain
// occasionally carry Shift-JIS bytes, so invalid UTF-8 is retried as
// Shift-JIS before giving up and returning the bytes verbatim.
func DecodeName(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	decoder := japanese.ShiftJIS.NewDecoder()
	result, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return string(data)
	}
	return string(result)
}

// EncodeShiftJIS converts a UTF-8 string to Shift-JIS bytes.
// Returns the original bytes if conversion fails.
func EncodeShiftJIS(s string) []byte {
	encoder := japanese.ShiftJIS.NewEncoder()
	result, _, err := transform.Bytes(encoder, []byte(s))
	if err != nil {
		return []byte(s)
	}
	return result
}
