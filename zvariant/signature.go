package zvariant

import (
	"fmt"
	"strings"
)

// Signature is a compact string describing a value's wire shape, e.g.
// "s" for a string or "a{sv}" for a dictionary of string to variant.
type Signature string

// String returns the signature text.
func (s Signature) String() string { return string(s) }

// basicSignatureTags is the primitive alphabet of the format.
const basicSignatureTags = "ybnqiuxtds"

func isBasicTag(c byte) bool {
	return strings.IndexByte(basicSignatureTags, c) >= 0
}

// Alignment returns the byte boundary a value described by s must start
// on in the wire buffer. The codec consults this when inserting padding;
// this package never pads anything itself.
func (s Signature) Alignment() int {
	if s == "" {
		return 1
	}
	switch s[0] {
	case 'y', 'v':
		return 1
	case 'n', 'q':
		return 2
	case 'b', 'i', 'u', 's', 'a':
		return 4
	case 'x', 't', 'd', '(', '{':
		return 8
	default:
		return 1
	}
}

// ParseSignature validates s as a single complete type and returns it
// as a Signature. Registry-derived signatures never go through here:
// their constants are trusted to be well formed already.
func ParseSignature(s string) (Signature, error) {
	if s == "" {
		return "", fmt.Errorf("empty signature")
	}
	rest, err := parseOne(s)
	if err != nil {
		return "", fmt.Errorf("signature %q: %w", s, err)
	}
	if rest != "" {
		return "", fmt.Errorf("signature %q: trailing %q after complete type", s, rest)
	}
	return Signature(s), nil
}

// parseOne consumes one complete type from the front of s and returns
// the remainder.
func parseOne(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("truncated type")
	}
	c := s[0]
	switch {
	case isBasicTag(c) || c == 'v':
		return s[1:], nil
	case c == 'a':
		if len(s) > 1 && s[1] == '{' {
			return parseDictEntry(s[1:])
		}
		return parseOne(s[1:])
	case c == '(':
		s = s[1:]
		if s != "" && s[0] == ')' {
			return "", fmt.Errorf("empty struct")
		}
		for {
			if s == "" {
				return "", fmt.Errorf("unterminated struct")
			}
			if s[0] == ')' {
				return s[1:], nil
			}
			var err error
			s, err = parseOne(s)
			if err != nil {
				return "", err
			}
		}
	case c == '{':
		return "", fmt.Errorf("dict entry outside array")
	default:
		return "", fmt.Errorf("unknown type code %q", string(c))
	}
}

// parseDictEntry consumes "{kv}". Dict-entry keys must be basic types.
func parseDictEntry(s string) (string, error) {
	s = s[1:] // consume '{'
	if s == "" {
		return "", fmt.Errorf("unterminated dict entry")
	}
	if !isBasicTag(s[0]) {
		return "", fmt.Errorf("dict entry key must be a basic type, got %q", string(s[0]))
	}
	rest, err := parseOne(s[1:])
	if err != nil {
		return "", err
	}
	if rest == "" || rest[0] != '}' {
		return "", fmt.Errorf("unterminated dict entry")
	}
	return rest[1:], nil
}
