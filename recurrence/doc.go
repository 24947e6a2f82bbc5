// Package recurrence computes calendar occurrences for recurring
// private-equity fund-operations tasks.
//
// All computations are date-only: inputs are normalized to midnight UTC and
// no time-of-day or timezone semantics apply. The Engine is stateless and
// safe for concurrent use; it never mutates the rules passed to it.
//
// Quarterly rules follow PE reporting conventions: with no anchor, a rule
// fires on quarter ends (Mar 31, Jun 30, Sep 30, Dec 31); with an anchor, it
// fires on the anchor's day-of-month in each quarter's first month. Days of
// month that exceed a month's length are clamped to the month's last day.
package recurrence
