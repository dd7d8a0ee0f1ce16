package core

// utoa converts an unsigned integer to a string without the fmt package.
// Lightweight alternative for embedded builds.
func utoa(n uint32) string {
	if n == 0 {
		return "0"
	}

	// Count digits
	temp := n
	digits := 0
	for temp > 0 {
		digits++
		temp /= 10
	}

	// Build string from right to left
	buf := make([]byte, digits)
	pos := digits - 1

	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}

	return string(buf)
}

// formatMMSS renders a second count as "MM:SS" for debug output.
func formatMMSS(seconds uint32) string {
	minutes := seconds / 60
	secs := seconds % 60

	out := utoa(minutes)
	if minutes < 10 {
		out = "0" + out
	}
	tail := utoa(secs)
	if secs < 10 {
		tail = "0" + tail
	}
	return out + ":" + tail
}
