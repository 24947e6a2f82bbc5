package task

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Title placeholders are rewritten from the occurrence date, not the due
// date. Any literal {Q1}..{Q4} is replaced with the date's actual quarter.
var (
	quarterLiteralRe = regexp.MustCompile(`\{Q[1-4]\}`)
	quarterRe        = regexp.MustCompile(`(?i)\{QUARTER\}`)
	monthRe          = regexp.MustCompile(`(?i)\{MONTH\}`)
	yearRe           = regexp.MustCompile(`(?i)\{YEAR\}`)
	instanceRe       = regexp.MustCompile(`(?i)\{INSTANCE\}`)
)

// ExpandTitle substitutes date placeholders in a template title for the
// given occurrence date and 1-based instance number.
func ExpandTitle(title string, date time.Time, instanceNumber int) string {
	month := int(date.Month())
	quarter := (month-1)/3 + 1

	out := quarterLiteralRe.ReplaceAllString(title, fmt.Sprintf("Q%d", quarter))
	out = quarterRe.ReplaceAllString(out, fmt.Sprintf("Q%d", quarter))
	out = monthRe.ReplaceAllString(out, fmt.Sprintf("%d月", month))
	out = yearRe.ReplaceAllString(out, strconv.Itoa(date.Year()))
	out = instanceRe.ReplaceAllString(out, fmt.Sprintf("#%d", instanceNumber))
	return out
}
