package tz

import (
	"strconv"
	"strings"
)

// posixRule is a parsed POSIX TZ string (tzset(3)):
//
//	std offset [dst [offset] [, start[/time], end[/time]]]
type posixRule struct {
	stdName    string
	stdOffset  int // seconds to add to UTC to get std local time
	dstName    string
	hasDST     bool
	dstOffset  int
	start, end transitionRule
}

// transitionRule describes when a DST transition happens in a given year,
// in one of the three POSIX date forms, plus the wall-clock time of day
// (seconds since local midnight) at which it takes effect.
type transitionRule struct {
	kind                 ruleKind
	julian               int // 1..365, for kind == ruleJulianNoLeap
	yearDay              int // 0..365, for kind == ruleYearDay
	month, week, weekday int // for kind == ruleMonthWeekDay
	timeOfDay            int // seconds since midnight, default 7200 (02:00)
}

type ruleKind int

const (
	ruleJulianNoLeap ruleKind = iota
	ruleYearDay
	ruleMonthWeekDay
)

// parsePosixRule parses the POSIX TZ string found in a TZif footer or a
// bare TZ environment-style value. Offsets are negated when stored: the
// POSIX convention is positive-west ("EST5" means UTC-5), this package's
// is positive-east.
func parsePosixRule(s string) (posixRule, error) {
	var rule posixRule
	name, rest, err := scanPosixName(s)
	if err != nil {
		return rule, err
	}
	rule.stdName = name
	off, rest, err := scanPosixOffset(rest)
	if err != nil {
		return rule, err
	}
	rule.stdOffset = -off

	if rest != "" && rest[0] != ',' {
		rule.dstName, rest, err = scanPosixName(rest)
		if err != nil {
			return rule, err
		}
		rule.hasDST = true
		if rest != "" && rest[0] != ',' {
			dstOff, rest2, err := scanPosixOffset(rest)
			if err != nil {
				return rule, err
			}
			rule.dstOffset = -dstOff
			rest = rest2
		} else {
			rule.dstOffset = rule.stdOffset + 3600
		}
	}

	if rest == "" {
		if rule.hasDST {
			// A DST name with no explicit rules: apply the US-style default
			// the common tzset implementations use.
			rule.start = transitionRule{kind: ruleMonthWeekDay, month: 3, week: 2, weekday: 0, timeOfDay: 7200}
			rule.end = transitionRule{kind: ruleMonthWeekDay, month: 11, week: 1, weekday: 0, timeOfDay: 7200}
		}
		return rule, nil
	}
	if !rule.hasDST {
		return rule, newFormatError("transition rules without a DST name in %q", s)
	}
	rest = rest[1:]
	startStr, endStr, ok := strings.Cut(rest, ",")
	if !ok {
		return rule, newFormatError("expected two transition rules in %q", s)
	}
	rule.start, err = parseTransitionRule(startStr)
	if err != nil {
		return rule, err
	}
	rule.end, err = parseTransitionRule(endStr)
	if err != nil {
		return rule, err
	}
	return rule, nil
}

// scanPosixName reads a std/dst designation: either a run of letters, or a
// quoted run of printable characters (digits and signs allowed) inside
// angle brackets. Returns the name and the unconsumed tail.
func scanPosixName(s string) (name string, tail string, err error) {
	if s == "" {
		return "", "", newFormatError("expected zone name")
	}
	if s[0] == '<' {
		i := strings.IndexByte(s, '>')
		if i < 0 {
			return "", "", newFormatError("unterminated <...> name in %q", s)
		}
		return s[1:i], s[i+1:], nil
	}
	i := 0
	for i < len(s) && isAlpha(s[i]) {
		i++
	}
	if i == 0 {
		return "", "", newFormatError("expected alphabetic zone name in %q", s)
	}
	return s[:i], s[i:], nil
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// scanPosixOffset parses "[+|-]h[h][:mm[:ss]]" seconds-west-of-UTC,
// stopping at the first byte that cannot continue the offset. An absent
// offset parses as zero with nothing consumed.
func scanPosixOffset(s string) (seconds int, tail string, err error) {
	i := 0
	sign := 1
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, s, nil
	}
	hours, _ := strconv.Atoi(s[start:i])
	total := hours * 3600
	for _, unit := range [2]int{60, 1} {
		if i < len(s) && s[i] == ':' {
			j := i + 1
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			if j == i+1 {
				return 0, "", newFormatError("empty offset field in %q", s)
			}
			v, _ := strconv.Atoi(s[i+1 : j])
			total += v * unit
			i = j
		}
	}
	return sign * total, s[i:], nil
}

// parseTransitionRule parses one of "Jn", "n", or "Mm.n.d[/time]".
func parseTransitionRule(s string) (transitionRule, error) {
	var tr transitionRule
	tr.timeOfDay = 7200
	timeStr := ""
	if idx := strings.IndexByte(s, '/'); idx >= 0 {
		s, timeStr = s[:idx], s[idx+1:]
	}
	switch {
	case len(s) > 0 && s[0] == 'J':
		n, err := strconv.Atoi(s[1:])
		if err != nil || n < 1 || n > 365 {
			return tr, newFormatError("invalid Jn rule %q", s)
		}
		tr.kind = ruleJulianNoLeap
		tr.julian = n
	case len(s) > 0 && s[0] == 'M':
		parts := strings.SplitN(s[1:], ".", 3)
		if len(parts) != 3 {
			return tr, newFormatError("invalid Mm.n.d rule %q", s)
		}
		m, err1 := strconv.Atoi(parts[0])
		w, err2 := strconv.Atoi(parts[1])
		d, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil || m < 1 || m > 12 || w < 1 || w > 5 || d < 0 || d > 6 {
			return tr, newFormatError("invalid Mm.n.d rule %q", s)
		}
		tr.kind = ruleMonthWeekDay
		tr.month, tr.week, tr.weekday = m, w, d
	default:
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 || n > 365 {
			return tr, newFormatError("invalid n rule %q", s)
		}
		tr.kind = ruleYearDay
		tr.yearDay = n
	}
	if timeStr != "" {
		secs, err := parseRuleTime(timeStr)
		if err != nil {
			return tr, err
		}
		tr.timeOfDay = secs
	}
	return tr, nil
}

// parseRuleTime parses "[-]hh[:mm[:ss]]" (POSIX.1-2017 allows -167..167 for
// the hour component, used by some distributions' TZ strings).
func parseRuleTime(s string) (int, error) {
	sign := 1
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	fields := strings.Split(s, ":")
	if len(fields) == 0 || len(fields) > 3 {
		return 0, newFormatError("invalid time field %q", s)
	}
	total := 0
	units := [3]int{3600, 60, 1}
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return 0, newFormatError("invalid time field %q", s)
		}
		total += v * units[i]
	}
	return sign * total, nil
}

// dayOfYear returns the 0-based day-of-year offset, within a civil year,
// that a transition rule designates, accounting for the Jn form's
// exclusion of leap day and the Mm.n.d form's weekday-in-month projection.
// The year's leap flag, month lengths and the weekday of January 1 are
// supplied by the caller (resolver.go).
func (tr transitionRule) dayOfYear(isLeapYear bool, daysInMonth func(month int) int, weekdayOfJan1 int) int {
	switch tr.kind {
	case ruleJulianNoLeap:
		day := tr.julian
		if isLeapYear && day >= 60 {
			day++
		}
		return day - 1
	case ruleYearDay:
		return tr.yearDay
	default: // ruleMonthWeekDay
		dayCount := 0
		for m := 1; m < tr.month; m++ {
			dayCount += daysInMonth(m)
		}
		firstWeekdayOfMonth := (weekdayOfJan1 + dayCount) % 7
		delta := (tr.weekday - firstWeekdayOfMonth + 7) % 7
		day := 1 + delta + (tr.week-1)*7
		last := daysInMonth(tr.month)
		if day > last {
			day -= 7
		}
		return dayCount + day - 1
	}
}
