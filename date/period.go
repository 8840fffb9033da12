package date

import (
	"fmt"
	"strings"
	"time"
)

// Period is a standard calendar period.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		return fmt.Sprintf("period(%d)", int(p))
	}
}

func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(p) {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %q", p)
	}
}

// StartOf returns the first day of the period containing d. Weeks start on Monday.
func (d Date) StartOf(p Period) Date {
	switch p {
	case Weekly:
		offset := (int(d.Weekday()) + 6) % 7 // days since monday
		return d.Add(-offset)
	case Monthly:
		return New(d.y, d.m, 1)
	case Quarterly:
		return New(d.y, (d.m-1)/3*3+1, 1)
	case Yearly:
		return New(d.y, time.January, 1)
	default:
		return d
	}
}

// EndOf returns the last day of the period containing d.
func (d Date) EndOf(p Period) Date {
	switch p {
	case Weekly:
		return d.StartOf(Weekly).Add(6)
	case Monthly:
		return New(d.y, d.m+1, 0)
	case Quarterly:
		return New(d.y, (d.m-1)/3*3+4, 0)
	case Yearly:
		return New(d.y+1, time.January, 0)
	default:
		return d
	}
}

// Range is an inclusive range of days.
type Range struct{ From, To Date }

// Within returns the range of the period p containing d.
func Within(d Date, p Period) Range {
	return Range{From: d.StartOf(p), To: d.EndOf(p)}
}

// Contains return true if day is included in the range (boundaries included).
// A zero boundary is open.
func (r Range) Contains(day Date) bool {
	if !r.From.IsZero() && day.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && day.After(r.To) {
		return false
	}
	return true
}

func (r Range) String() string {
	return fmt.Sprintf("%s..%s", r.From, r.To)
}
