package blockrule

// Identity returns the value unchanged. Useful as an explicit
// placeholder when a Leaf's encoder slot is programmatically assigned.
func Identity(s string) string { return s }

// FirstNChars returns an Encoder that truncates its input to its first
// n runes (not bytes, so multi-byte characters aren't split). Shorter
// inputs pass through unchanged. This is a generic structural encoder,
// not a phonetic/date/phone/geohash algorithm.
func FirstNChars(n int) Encoder {
	return func(s string) string {
		r := []rune(s)
		if n < 0 || n >= len(r) {
			return s
		}

		return string(r[:n])
	}
}
