package script

// scriptNum decodes a minimally-encoded script integer: little-endian
// magnitude with the sign carried in the high bit of the last byte. Only
// payloads of at most 4 bytes are decoded this way during disassembly.
func scriptNum(b []byte) int64 {
	if len(b) == 0 {
		return 0
	}

	var result int64
	for i, v := range b {
		result |= int64(v) << (8 * i)
	}

	if b[len(b)-1]&0x80 != 0 {
		mask := int64(0x80) << (8 * (len(b) - 1))
		result &= ^mask
		return -result
	}

	return result
}

// scriptNumBytes is the encoding inverse, used by script builders and tests.
func scriptNumBytes(n int64) []byte {
	if n == 0 {
		return nil
	}

	negative := n < 0
	abs := n
	if negative {
		abs = -n
	}

	var b []byte
	for abs > 0 {
		b = append(b, byte(abs&0xff))
		abs >>= 8
	}

	if b[len(b)-1]&0x80 != 0 {
		if negative {
			b = append(b, 0x80)
		} else {
			b = append(b, 0x00)
		}
	} else if negative {
		b[len(b)-1] |= 0x80
	}

	return b
}
