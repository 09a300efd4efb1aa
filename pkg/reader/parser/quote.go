// Released under an MIT license. See LICENSE.

package parser

// Atom returns s escaped so that it is read back as a single atom.
// Parsing the result produces exactly the bytes in s, unless s is empty.
func Atom(s string) string {
	buf := make([]byte, 0, len(s)+len(s)/4)

	for i := 0; i < len(s); i++ {
		b := s[i]

		switch {
		case b == ' ', b == '(', b == ')', b == '\\':
			buf = append(buf, '\\', b)
		case i == 0 && (b == ';' || b == '"'):
			buf = append(buf, '\\', b)
		default:
			buf = control(buf, b)
		}
	}

	return string(buf)
}

// Quote returns s as a double-quoted string literal.
// Parsing the result produces exactly the bytes in s.
// Bytes of 0x80 and above are written as they are.
func Quote(s string) string {
	buf := make([]byte, 0, 3*len(s)/2+2) // Try to avoid more allocations.

	buf = append(buf, '"')

	for i := 0; i < len(s); i++ {
		b := s[i]

		switch b {
		case '"':
			buf = append(buf, `\"`...)
		case '\\':
			buf = append(buf, `\\`...)
		default:
			buf = control(buf, b)
		}
	}

	buf = append(buf, '"')

	return string(buf)
}

// control appends b to buf, escaping it if it is a control byte.
func control(buf []byte, b byte) []byte {
	switch b {
	case '\a':
		return append(buf, `\a`...)
	case '\b':
		return append(buf, `\b`...)
	case '\n':
		return append(buf, `\n`...)
	case '\r':
		return append(buf, `\r`...)
	case '\t':
		return append(buf, `\t`...)
	case '\v':
		return append(buf, `\v`...)
	}

	if b < ' ' || b == 0x7f {
		return append(buf, '\\', 'x', hex(b>>4), hex(b))
	}

	return append(buf, b)
}

func hex(n byte) byte {
	return "0123456789abcdef"[n&0xF]
}
