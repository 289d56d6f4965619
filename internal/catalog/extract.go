package catalog

// hanLo, hanHi bound the CJK Unified Ideographs range the app accepts,
// matching the common simplified-Chinese character range.
const (
	hanLo = 0x4E00
	hanHi = 0x9FA5
)

// IsHan reports whether r falls in the accepted CJK range.
func IsHan(r rune) bool {
	return r >= hanLo && r <= hanHi
}

// ExtractHan returns the distinct CJK characters of text, as
// single-character strings in first-occurrence order. Everything
// else (latin, punctuation, whitespace) is ignored.
func ExtractHan(text string) []string {
	seen := make(map[rune]bool)
	var out []string
	for _, r := range text {
		if !IsHan(r) || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, string(r))
	}
	return out
}
