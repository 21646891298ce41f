// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textutil

import (
	"regexp"
	"strings"
	"time"
)

var datePattern = regexp.MustCompile(`(\d{2}\.\d{2}\.\d{4})`)

// FindDate scans line for a DD.MM.YYYY date. On a hit it returns the date in
// ISO 8601 form and the remainder of the line after the match, trimmed of
// spaces and trailing periods (the weekday label in both menu sources).
// Substrings with out-of-range day or month values are not dates.
func FindDate(line string) (iso, rest string, ok bool) {
	loc := datePattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return "", "", false
	}

	t, err := time.Parse("02.01.2006", line[loc[2]:loc[3]])
	if err != nil {
		return "", "", false
	}

	rest = strings.Trim(line[loc[1]:], " .")
	return t.Format("2006-01-02"), rest, true
}
