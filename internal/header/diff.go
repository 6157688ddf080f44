package header

// Diff renders a line comparison between the expected header and the lines
// found in the file. Matching lines appear once with a two-space prefix;
// differing positions appear as a "- " expected line and a "+ " found line.
func Diff(expected, found []string) []string {
	n := max(len(expected), len(found))
	var out []string
	for i := 0; i < n; i++ {
		haveWant, haveGot := i < len(expected), i < len(found)
		if haveWant && haveGot && expected[i] == found[i] {
			out = append(out, "  "+expected[i])
			continue
		}
		if haveWant {
			out = append(out, "- "+expected[i])
		}
		if haveGot {
			out = append(out, "+ "+found[i])
		}
	}
	return out
}
