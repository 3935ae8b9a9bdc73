// Package duration parses human-friendly durations such as "3min",
// "1h 30m", "2days" or "90" (plain seconds).
package duration

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/hammamikhairi/cdown/internal/domain"
)

var units = map[string]time.Duration{
	"nsec": time.Nanosecond, "ns": time.Nanosecond,
	"usec": time.Microsecond, "us": time.Microsecond,
	"msec": time.Millisecond, "ms": time.Millisecond,
	"seconds": time.Second, "second": time.Second, "secs": time.Second, "sec": time.Second, "s": time.Second,
	"minutes": time.Minute, "minute": time.Minute, "mins": time.Minute, "min": time.Minute, "m": time.Minute,
	"hours": time.Hour, "hour": time.Hour, "hrs": time.Hour, "hr": time.Hour, "h": time.Hour,
	"days": 24 * time.Hour, "day": 24 * time.Hour, "d": 24 * time.Hour,
	"weeks": 7 * 24 * time.Hour, "week": 7 * 24 * time.Hour, "w": 7 * 24 * time.Hour,
	"months": 2630016 * time.Second, "month": 2630016 * time.Second, "M": 2630016 * time.Second,
	"years": 31557600 * time.Second, "year": 31557600 * time.Second, "y": 31557600 * time.Second,
}

// Parse reads a sequence of <number><unit> groups, optionally separated by
// spaces, and returns their sum. A bare unsigned integer is taken as
// seconds. Unit names are case-sensitive only for "M" (months) versus "m"
// (minutes).
func Parse(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", domain.ErrInvalidDuration)
	}
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		if n > uint64(math.MaxInt64/int64(time.Second)) {
			return 0, fmt.Errorf("%w: %q is too large", domain.ErrInvalidDuration, s)
		}
		return time.Duration(n) * time.Second, nil
	}

	var total time.Duration
	rest := s
	for rest != "" {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		if rest == "" {
			break
		}

		i := strings.IndexFunc(rest, func(r rune) bool { return r < '0' || r > '9' })
		if i == 0 {
			return 0, fmt.Errorf("%w: expected number at %q", domain.ErrInvalidDuration, rest)
		}
		if i < 0 {
			return 0, fmt.Errorf("%w: missing unit after %q", domain.ErrInvalidDuration, rest)
		}
		num, err := strconv.ParseUint(rest[:i], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: number %q out of range", domain.ErrInvalidDuration, rest[:i])
		}
		rest = strings.TrimLeftFunc(rest[i:], unicode.IsSpace)

		j := strings.IndexFunc(rest, func(r rune) bool { return !unicode.IsLetter(r) })
		if j < 0 {
			j = len(rest)
		}
		name := rest[:j]
		if name == "" {
			return 0, fmt.Errorf("%w: missing unit after %d", domain.ErrInvalidDuration, num)
		}
		unit, ok := lookupUnit(name)
		if !ok {
			return 0, fmt.Errorf("%w: unknown unit %q", domain.ErrInvalidDuration, name)
		}
		rest = rest[j:]

		if num > uint64(math.MaxInt64/int64(unit)) {
			return 0, fmt.Errorf("%w: %d%s is too large", domain.ErrInvalidDuration, num, name)
		}
		part := time.Duration(num) * unit
		if total > math.MaxInt64-part {
			return 0, fmt.Errorf("%w: %q is too large", domain.ErrInvalidDuration, s)
		}
		total += part
	}
	return total, nil
}

func lookupUnit(name string) (time.Duration, bool) {
	if u, ok := units[name]; ok {
		return u, true
	}
	u, ok := units[strings.ToLower(name)]
	return u, ok
}

// Seconds parses s and truncates the result to whole seconds.
func Seconds(s string) (uint64, error) {
	d, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return uint64(d / time.Second), nil
}
