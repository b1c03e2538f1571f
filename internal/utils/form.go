package utils

import "strings"

// FormValue returns the decoded value of the first pair named key in an
// application/x-www-form-urlencoded body, or "" when the key is absent.
func FormValue(body, key string) string {
	v, _ := lookup(body, key)
	return v
}

// HasField reports whether body carries a pair named key, even an empty one.
func HasField(body, key string) bool {
	_, ok := lookup(body, key)
	return ok
}

// DecodeForm decodes every pair in body. Repeated keys keep their first value.
func DecodeForm(body string) map[string]string {
	values := make(map[string]string)
	for _, pair := range strings.Split(body, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		k = DecodeComponent(k)
		if _, seen := values[k]; seen {
			continue
		}
		values[k] = DecodeComponent(v)
	}
	return values
}

func lookup(body, key string) (string, bool) {
	for _, pair := range strings.Split(body, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		if DecodeComponent(k) == key {
			return DecodeComponent(v), true
		}
	}
	return "", false
}

// DecodeComponent undoes form encoding: '+' becomes a space and %XY becomes
// the byte 0xXY. Incomplete or non-hex escapes are kept as written.
func DecodeComponent(s string) string {
	if !strings.ContainsAny(s, "%+") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '+':
			b.WriteByte(' ')
		case '%':
			if i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
				b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
				i += 2
				continue
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
