package seq

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

// FormatTimeSpan renders d in the constant .NET TimeSpan format used by the Seq API:
// [-][d.]hh:mm:ss[.fffffff].
func FormatTimeSpan(d time.Duration) string {
	var b strings.Builder
	if d < 0 {
		b.WriteByte('-')
		d = -d
	}

	days := d / day
	d -= days * day
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	d -= seconds * time.Second

	if days > 0 {
		fmt.Fprintf(&b, "%d.", days)
	}
	fmt.Fprintf(&b, "%02d:%02d:%02d", hours, minutes, seconds)
	// One tick is 100ns.
	if ticks := d / 100; ticks > 0 {
		fmt.Fprintf(&b, ".%07d", ticks)
	}
	return b.String()
}

// ParseTimeSpan parses the constant .NET TimeSpan format.
func ParseTimeSpan(s string) (time.Duration, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, fmt.Errorf("empty time span")
	}

	neg := strings.HasPrefix(raw, "-")
	raw = strings.TrimPrefix(raw, "-")

	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid time span %q", s)
	}

	var days, hours int64
	var err error
	if head, tail, found := strings.Cut(parts[0], "."); found {
		if days, err = strconv.ParseInt(head, 10, 64); err != nil {
			return 0, fmt.Errorf("invalid days in time span %q: %w", s, err)
		}
		parts[0] = tail
	}
	if hours, err = strconv.ParseInt(parts[0], 10, 64); err != nil || hours > 23 {
		return 0, fmt.Errorf("invalid hours in time span %q", s)
	}
	minutes, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || minutes > 59 {
		return 0, fmt.Errorf("invalid minutes in time span %q", s)
	}

	secPart, fracPart, _ := strings.Cut(parts[2], ".")
	seconds, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil || seconds > 59 {
		return 0, fmt.Errorf("invalid seconds in time span %q", s)
	}
	var ticks int64
	if fracPart != "" {
		if len(fracPart) > 7 {
			return 0, fmt.Errorf("invalid fraction in time span %q", s)
		}
		fracPart += strings.Repeat("0", 7-len(fracPart))
		if ticks, err = strconv.ParseInt(fracPart, 10, 64); err != nil {
			return 0, fmt.Errorf("invalid fraction in time span %q: %w", s, err)
		}
	}

	d := time.Duration(days)*day +
		time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(ticks)*100
	if neg {
		d = -d
	}
	return d, nil
}
