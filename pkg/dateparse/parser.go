package dateparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves informal date phrases ("next friday", "end of week",
// "jan 15") found in free text to calendar dates. All resolution is
// relative to a caller-supplied base time, so results are deterministic.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone string,
// e.g. "Europe/Berlin".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Patterns are tried in this order; the first one found anywhere in the
// text wins. Matching is case-insensitive.
var (
	reToday      = regexp.MustCompile(`(?i)\btoday\b`)
	reTomorrow   = regexp.MustCompile(`(?i)\b(?:tomorrow|tmrw)\b`)
	reYesterday  = regexp.MustCompile(`(?i)\byesterday\b`)
	reWeekday    = regexp.MustCompile(`(?i)\b(?:(this|next)\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	reEndOfWeek  = regexp.MustCompile(`(?i)\bend of (?:this )?week\b`)
	reEndOfMonth = regexp.MustCompile(`(?i)\bend of (?:this )?month\b`)
	reInDays     = regexp.MustCompile(`(?i)\bin (\d+) days?\b`)
	reISODate    = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	reMonthDay   = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// Parse scans text for the first recognizable date phrase and resolves
// it relative to base. Returns nil when nothing matches. Day-of-month
// values are not validated: "feb 30" overflows into March the way
// time.Date normalizes it.
func (p *Parser) Parse(text string, base time.Time) *Result {
	today := p.startOfDay(base)

	if m := reToday.FindString(text); m != "" {
		return p.newResult(today, m)
	}
	if m := reTomorrow.FindString(text); m != "" {
		return p.newResult(today.AddDate(0, 0, 1), m)
	}
	if m := reYesterday.FindString(text); m != "" {
		return p.newResult(today.AddDate(0, 0, -1), m)
	}

	if m := reWeekday.FindStringSubmatch(text); m != nil {
		qualifier := strings.ToLower(m[1])
		target := weekdays[strings.ToLower(m[2])]

		diff := int(target) - int(today.Weekday())
		if diff < 0 {
			diff += 7
		}
		// "next friday" said on a Friday means a week from now;
		// "this friday" (or a bare weekday) means today.
		if diff == 0 && qualifier == "next" {
			diff = 7
		}
		return p.newResult(today.AddDate(0, 0, diff), m[0])
	}

	if m := reEndOfWeek.FindString(text); m != "" {
		// 6 - weekday with Sunday=0 lands on the upcoming Saturday.
		return p.newResult(today.AddDate(0, 0, 6-int(today.Weekday())), m)
	}

	if m := reEndOfMonth.FindString(text); m != "" {
		last := time.Date(today.Year(), today.Month()+1, 0, 0, 0, 0, 0, p.location)
		return p.newResult(last, m)
	}

	if m := reInDays.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return p.newResult(today.AddDate(0, 0, n), m[0])
	}

	if m := reISODate.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		// Explicit dates are taken literally, no year rollover.
		return p.newResult(time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location), m[0])
	}

	if m := reMonthDay.FindStringSubmatch(text); m != nil {
		month := months[strings.ToLower(m[1])]
		day, _ := strconv.Atoi(m[2])

		date := time.Date(today.Year(), month, day, 0, 0, 0, 0, p.location)
		if date.Before(today) {
			date = date.AddDate(1, 0, 0)
		}
		return p.newResult(date, m[0])
	}

	return nil
}

func (p *Parser) newResult(t time.Time, original string) *Result {
	return &Result{
		Date:     t.Format(ISODateFormat),
		Original: original,
	}
}

// startOfDay returns midnight of the given instant in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
