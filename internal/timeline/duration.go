package timeline

import (
	"fmt"
	"strconv"
)

// ParseDuration converts an ISO-8601 duration designator string
// ("PT1H2M3S", "PT90.5S", "P1DT12H") into seconds.
func ParseDuration(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	if s[0] != 'P' {
		return 0, fmt.Errorf("duration %q: missing P designator", s)
	}

	var (
		total   float64
		num     string
		inTime  bool
		haveAny bool
	)

	for i := 1; i < len(s); i++ {
		c := s[i]
		if c == 'T' {
			if inTime {
				return 0, fmt.Errorf("duration %q: repeated T designator", s)
			}
			inTime = true
			continue
		}
		if (c >= '0' && c <= '9') || c == '.' {
			num += string(c)
			continue
		}

		if num == "" {
			return 0, fmt.Errorf("duration %q: designator %q has no value", s, string(c))
		}
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, fmt.Errorf("duration %q: bad number %q", s, num)
		}
		num = ""

		var mult float64
		switch {
		case c == 'D' && !inTime:
			mult = 86400
		case c == 'H' && inTime:
			mult = 3600
		case c == 'M' && inTime:
			mult = 60
		case c == 'S' && inTime:
			mult = 1
		default:
			return 0, fmt.Errorf("duration %q: unsupported designator %q", s, string(c))
		}
		total += v * mult
		haveAny = true
	}

	if num != "" {
		return 0, fmt.Errorf("duration %q: trailing number without designator", s)
	}
	if !haveAny {
		return 0, fmt.Errorf("duration %q: no components", s)
	}
	return total, nil
}

// ParseDurationLenient behaves like ParseDuration but returns 0 for
// input it cannot parse. Compatibility mode for callers that relied on
// the original tool's silent zero fallback.
func ParseDurationLenient(s string) float64 {
	v, err := ParseDuration(s)
	if err != nil {
		return 0
	}
	return v
}
