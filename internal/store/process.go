package store

import (
	"strings"
	"time"
)

// DateLayout is the calendar-day key format used throughout the store.
const DateLayout = "2006-01-02"

// Process is one tracked program's usage ledger on a single machine.
// Title is the identity: the poller matches live process names against it.
type Process struct {
	Title      string            `json:"title"`
	DailyUsage map[string]uint64 `json:"daily_usage"`
	Tags       []string          `json:"tags"`
	LastSeen   string            `json:"last_seen"`
}

// NewProcess returns an empty ledger for title, last seen today.
func NewProcess(title string) Process {
	return Process{
		Title:      title,
		DailyUsage: make(map[string]uint64),
		Tags:       []string{},
		LastSeen:   Today(),
	}
}

// AddTime credits the process with active seconds under today's date and
// bumps LastSeen.
func (p *Process) AddTime(seconds uint64) {
	if p.DailyUsage == nil {
		p.DailyUsage = make(map[string]uint64)
	}
	today := Today()
	p.DailyUsage[today] += seconds
	p.LastSeen = today
}

// TotalUsage sums every recorded day.
func (p *Process) TotalUsage() uint64 {
	var total uint64
	for _, secs := range p.DailyUsage {
		total += secs
	}
	return total
}

// TodayUsage returns the seconds recorded under today's date.
func (p *Process) TodayUsage() uint64 {
	return p.DailyUsage[Today()]
}

// UsageOn returns the seconds recorded under the given YYYY-MM-DD date.
func (p *Process) UsageOn(date string) uint64 {
	return p.DailyUsage[date]
}

// AddTag appends tag unless already present. Reports whether it was added.
func (p *Process) AddTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return false
		}
	}
	p.Tags = append(p.Tags, tag)
	return true
}

// RemoveTag removes tag. Reports whether it was present.
func (p *Process) RemoveTag(tag string) bool {
	for i, t := range p.Tags {
		if t == tag {
			p.Tags = append(p.Tags[:i], p.Tags[i+1:]...)
			return true
		}
	}
	return false
}

// HasTag reports whether the process carries tag.
func (p *Process) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// DropBefore removes every daily entry dated strictly before cutoff
// (lexicographic compare works because dates are YYYY-MM-DD). Returns how
// many entries were dropped.
func (p *Process) DropBefore(cutoff string) int {
	dropped := 0
	for date := range p.DailyUsage {
		if date < cutoff {
			delete(p.DailyUsage, date)
			dropped++
		}
	}
	return dropped
}

// Clone returns a deep copy, safe to mutate independently.
func (p Process) Clone() Process {
	out := p
	out.DailyUsage = make(map[string]uint64, len(p.DailyUsage))
	for date, secs := range p.DailyUsage {
		out.DailyUsage[date] = secs
	}
	out.Tags = make([]string, len(p.Tags))
	copy(out.Tags, p.Tags)
	return out
}

// Today returns the current date in DateLayout.
func Today() string {
	return time.Now().Format(DateLayout)
}

// CutoffDate returns the date `days` days before today, in DateLayout.
func CutoffDate(days int64) string {
	return time.Now().AddDate(0, 0, -int(days)).Format(DateLayout)
}

// SplitTags tokenizes a comma-separated tag argument, trimming whitespace
// and dropping empty entries.
func SplitTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
