package ctcp

// maskBytes XORs every byte of data with key. Self-inverse; a no-op when
// key == 0.
func maskBytes(data []byte, key byte) {
	if key == 0 {
		return
	}
	for i := range data {
		data[i] ^= key
	}
}

// shuffleBytes permutes data in place, swapping data[i] with data[(i^key)%len]
// for i = 0, 1, ..., len-1 in ascending order.
func shuffleBytes(data []byte, key uint32) {
	n := uint32(len(data))
	if n < 2 {
		return
	}
	for i := uint32(0); i < n; i++ {
		j := (i ^ key) % n
		data[i], data[j] = data[j], data[i]
	}
}

// unshuffleBytes reverses shuffleBytes applied to a slice of the same length
// under the same key, by iterating the identical swaps in descending order.
func unshuffleBytes(data []byte, key uint32) {
	n := uint32(len(data))
	if n < 2 {
		return
	}
	for i := n; i > 0; i-- {
		idx := i - 1
		j := (idx ^ key) % n
		data[idx], data[j] = data[j], data[idx]
	}
}

// deltaEncode replaces each byte with its wrapping difference from the
// original (pre-encoding) predecessor; the first byte is biased by key.
func deltaEncode(data []byte, key byte) {
	if len(data) == 0 {
		return
	}
	p := data[0]
	data[0] = data[0] - key
	for i := 1; i < len(data); i++ {
		c := data[i]
		data[i] = c - p
		p = c
	}
}

// deltaDecode is the exact inverse of deltaEncode.
func deltaDecode(data []byte, key byte) {
	if len(data) == 0 {
		return
	}
	c := data[0] + key
	data[0] = c
	for i := 1; i < len(data); i++ {
		c = c + data[i]
		data[i] = c
	}
}

const (
	base94 = 94
	base93 = base94 - 1
	offset = 0x20
)

// base94Encode maps each input byte to one or two printable output bytes in
// [0x20, 0x7e].
func base94Encode(data []byte, key byte) []byte {
	out := make([]byte, 0, len(data)*2)
	for _, b := range data {
		adjusted := b - key
		if adjusted < base93 {
			out = append(out, offset+adjusted)
		} else {
			high := (adjusted/base93 - 1) + base93
			low := adjusted % base93
			out = append(out, offset+high, offset+low)
		}
	}
	return out
}

// base94Decode reverses base94Encode. Any byte outside [0x20, 0x7e], any
// dangling high digit, or any combined value exceeding 0xff is a fatal
// decode error.
func base94Decode(data []byte, key byte) ([]byte, error) {
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		r := data[i]
		if r < 0x20 || r > 0x7e {
			return nil, ErrBadSymbol
		}
		v := r - offset
		if v < base93 {
			out = append(out, v+key)
			continue
		}

		i++
		if i >= len(data) {
			return nil, ErrBadPair
		}
		r2 := data[i]
		if r2 < 0x20 || r2 > 0x7e {
			return nil, ErrBadSymbol
		}
		v2 := r2 - offset
		if v2 >= base93 {
			return nil, ErrBadPair
		}

		combined := uint16(v-base93+1)*base93 + uint16(v2)
		if combined > 0xff {
			return nil, ErrBadPair
		}
		out = append(out, byte(combined)+key)
	}
	return out, nil
}
