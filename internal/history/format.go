package history

import (
	"fmt"
	"math"
	"time"
)

const dateTimeLayout = "Jan 2, 03:04 PM"

// FormatDateTime renders t like "Mar 15, 08:30 AM", or "-" when absent.
func FormatDateTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format(dateTimeLayout)
}

func TimeAgo(t, now time.Time) string {
	minutes := int(math.Floor(now.Sub(t).Minutes()))
	switch {
	case minutes < 60:
		return fmt.Sprintf("%d minutes ago", minutes)
	case minutes < 1440:
		return fmt.Sprintf("%d hours ago", minutes/60)
	default:
		return fmt.Sprintf("%d days ago", minutes/1440)
	}
}
