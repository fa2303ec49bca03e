package job

import (
	"strconv"
	"strings"
	"time"
)

// Slugify derives the public apply-link token from the role text plus a
// base-36 millisecond suffix. Uniqueness comes from the timestamp; role text
// only makes the link readable.
func Slugify(role string, now time.Time) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(role)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	base := strings.TrimSuffix(b.String(), "-")
	suffix := strconv.FormatInt(now.UnixMilli(), 36)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}
