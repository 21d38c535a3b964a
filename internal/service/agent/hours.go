package agent

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quickserve/crew-assistant/backend/internal/model/catalog"
)

// formatHours renders a store's weekly hours in fixed Mon-Sun order. Days
// flagged as 24-hour drive-thru, or spanning the literal full-day range, get
// the dedicated wording instead of a time range.
func formatHours(store catalog.StoreLocation) []string {
	lines := make([]string, 0, len(catalog.Weekdays))
	for _, day := range catalog.Weekdays {
		hours := store.Hours[day.Key]
		if hours.DriveThru24 || (hours.Open == "00:00" && hours.Close == "23:59") {
			lines = append(lines, day.Label+": Open 24 hours (drive-thru)")
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s – %s", day.Label, formatTime(hours.Open), formatTime(hours.Close)))
	}
	return lines
}

// formatTime converts 24-hour "HH:MM" to "H:MM AM/PM".
func formatTime(value string) string {
	hh, mm, _ := strings.Cut(value, ":")
	hours, _ := strconv.Atoi(hh)
	minutes, _ := strconv.Atoi(mm)

	suffix := "AM"
	if hours >= 12 {
		suffix = "PM"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minutes, suffix)
}
