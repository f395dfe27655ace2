package domain

// CountChangedLines returns the number of lines across all Added and Removed segments.
func CountChangedLines(segments DiffResult) int {
	count := 0
	for _, seg := range segments {
		if seg.Type == DiffAdded || seg.Type == DiffRemoved {
			count += len(seg.Lines)
		}
	}
	return count
}
