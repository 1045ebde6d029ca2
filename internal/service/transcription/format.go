package transcription

import "fmt"

// FormatDuration renders a duration in seconds as MM:SS, or "N/A" when the
// duration probe yielded nothing.
func FormatDuration(seconds *float64) string {
	if seconds == nil || *seconds < 0 {
		return "N/A"
	}
	total := int(*seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatFileSize renders a byte count with a human-readable unit.
func FormatFileSize(size int64) string {
	switch {
	case size <= 0:
		return "N/A"
	case size < 1024:
		return fmt.Sprintf("%d B", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}
