package models

import (
	"fmt"
	"strconv"
	"strings"
)

const descriptionLimit = 200

// FormatDuration renders seconds as MM:SS, or HH:MM:SS past one hour.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// TruncateDescription caps a description for display.
func TruncateDescription(desc string) string {
	r := []rune(desc)
	if len(r) <= descriptionLimit {
		return desc
	}
	return string(r[:descriptionLimit]) + "..."
}

// FormatCount renders n with comma thousands separators.
func FormatCount(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	digits := strconv.FormatInt(n, 10)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
