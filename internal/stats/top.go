package stats

// TopMisses returns the labels of the n most missed characters.
func TopMisses(rows []MissRow, n int) []string {
	if n <= 0 || len(rows) == 0 {
		return nil
	}
	if n > len(rows) {
		n = len(rows)
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, CharLabel(rows[i].Char))
	}
	return out
}
