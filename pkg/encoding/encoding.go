// Package encoding resolves the text encodings OBJ files are found in.
// Exporters on Korean and Western Windows systems often write material names
// in the local code page rather than UTF-8.
package encoding

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
)

// ErrUnknownEncoding is returned by Lookup for unsupported names.
var ErrUnknownEncoding = errors.New("unknown text encoding")

var byName = map[string]encoding.Encoding{
	"euc-kr":       korean.EUCKR,
	"cp949":        korean.EUCKR,
	"shift_jis":    japanese.ShiftJIS,
	"sjis":         japanese.ShiftJIS,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
}

// Lookup returns the encoding registered under name (case-insensitive).
// UTF-8 and the empty name return a nil encoding, meaning no decoding is needed.
func Lookup(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "", "utf-8", "utf8":
		return nil, nil
	}
	enc, ok := byName[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownEncoding, name, strings.Join(Names(), ", "))
	}
	return enc, nil
}

// Names returns the accepted encoding names, UTF-8 first.
func Names() []string {
	return []string{"utf-8", "euc-kr", "cp949", "shift_jis", "sjis", "windows-1252", "cp1252", "iso-8859-1", "latin1"}
}
