package session

var linePoints = [5]int{0, 40, 100, 300, 1200}

// Points returns the score for clearing lines rows at once while at level. Counts outside
// 0-4 score nothing.
func Points(lines, level int) int {
	if lines < 0 || lines >= len(linePoints) {
		return 0
	}
	return linePoints[lines] * (max(level, 0) + 1)
}
