package classfile

import "strings"

// decodeModifiedUtf8 decodes the class-file string encoding: NUL is stored
// as C0 80 and supplementary characters as two 3-byte surrogate halves.
// Malformed bytes are kept as single runes rather than rejected.
func decodeModifiedUtf8(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c&0x80 == 0:
			sb.WriteByte(c)
			i++
		case c&0xE0 == 0xC0 && i+1 < len(b):
			sb.WriteRune(rune(c&0x1F)<<6 | rune(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0 && i+2 < len(b):
			r := decode3(b[i:])
			if r >= 0xD800 && r <= 0xDBFF && i+5 < len(b) && b[i+3]&0xF0 == 0xE0 {
				low := decode3(b[i+3:])
				if low >= 0xDC00 && low <= 0xDFFF {
					sb.WriteRune(0x10000 + (r-0xD800)<<10 + (low - 0xDC00))
					i += 6
					continue
				}
			}
			sb.WriteRune(r)
			i += 3
		default:
			sb.WriteRune(rune(c))
			i++
		}
	}
	return sb.String()
}

func decode3(b []byte) rune {
	return rune(b[0]&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F)
}
