package pet

import "fmt"

// FormatAge renders an age in cared-for minutes as a compact string like
// "2d 03h 45m". Shorter ages drop the leading units.
func FormatAge(minutes uint64) string {
	days := minutes / (24 * 60)
	hours := (minutes / 60) % 24
	mins := minutes % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %02dh %02dm", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh %02dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
