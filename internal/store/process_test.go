package store

import (
	"reflect"
	"testing"
)

func TestAddTimeAccumulatesUnderToday(t *testing.T) {
	p := NewProcess("firefox")

	p.AddTime(5)
	p.AddTime(5)

	if got := p.TodayUsage(); got != 10 {
		t.Fatalf("TodayUsage = %d, want 10", got)
	}
	if p.LastSeen != Today() {
		t.Fatalf("LastSeen = %q, want %q", p.LastSeen, Today())
	}
}

func TestTotalUsageSumsEveryDay(t *testing.T) {
	p := NewProcess("editor")
	p.DailyUsage["2026-08-20"] = 100
	p.DailyUsage["2026-08-21"] = 200
	p.AddTime(50)

	if got := p.TotalUsage(); got != 350 {
		t.Fatalf("TotalUsage = %d, want 350", got)
	}
	if got := p.UsageOn("2026-08-20"); got != 100 {
		t.Fatalf("UsageOn(2026-08-20) = %d, want 100", got)
	}
	if got := p.UsageOn("1999-01-01"); got != 0 {
		t.Fatalf("UsageOn(1999-01-01) = %d, want 0", got)
	}
}

func TestAddTagIgnoresDuplicates(t *testing.T) {
	p := NewProcess("editor")

	if !p.AddTag("work") {
		t.Fatal("first AddTag should report true")
	}
	if p.AddTag("work") {
		t.Fatal("duplicate AddTag should report false")
	}
	if !reflect.DeepEqual(p.Tags, []string{"work"}) {
		t.Fatalf("Tags = %v, want [work]", p.Tags)
	}
}

func TestRemoveTagReportsPresence(t *testing.T) {
	p := NewProcess("editor")
	p.AddTag("work")
	p.AddTag("dev")

	if !p.RemoveTag("work") {
		t.Fatal("RemoveTag of present tag should report true")
	}
	if p.RemoveTag("work") {
		t.Fatal("RemoveTag of absent tag should report false")
	}
	if !reflect.DeepEqual(p.Tags, []string{"dev"}) {
		t.Fatalf("Tags = %v, want [dev]", p.Tags)
	}
}

func TestDropBeforeRemovesStrictlyOlderDays(t *testing.T) {
	p := NewProcess("editor")
	p.DailyUsage["2026-08-01"] = 10
	p.DailyUsage["2026-08-10"] = 20
	p.DailyUsage["2026-08-15"] = 30

	if got := p.DropBefore("2026-08-10"); got != 1 {
		t.Fatalf("DropBefore dropped %d entries, want 1", got)
	}
	if _, ok := p.DailyUsage["2026-08-01"]; ok {
		t.Fatal("2026-08-01 should be dropped")
	}
	if _, ok := p.DailyUsage["2026-08-10"]; !ok {
		t.Fatal("2026-08-10 is on the cutoff and must survive")
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := NewProcess("editor")
	p.AddTag("work")
	p.DailyUsage["2026-08-20"] = 100

	clone := p.Clone()
	clone.DailyUsage["2026-08-20"] = 999
	clone.Tags[0] = "changed"

	if p.DailyUsage["2026-08-20"] != 100 {
		t.Fatal("mutating the clone's usage touched the original")
	}
	if p.Tags[0] != "work" {
		t.Fatal("mutating the clone's tags touched the original")
	}
}

func TestSplitTags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"work", []string{"work"}},
		{"work,dev", []string{"work", "dev"}},
		{" work , dev ", []string{"work", "dev"}},
		{"work,,dev", []string{"work", "dev"}},
		{"", nil},
		{" , ", nil},
	}
	for _, tc := range cases {
		if got := SplitTags(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("SplitTags(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCutoffDate(t *testing.T) {
	if got := CutoffDate(0); got != Today() {
		t.Fatalf("CutoffDate(0) = %q, want today %q", got, Today())
	}
	if got := CutoffDate(7); got >= Today() {
		t.Fatalf("CutoffDate(7) = %q, want a date before today", got)
	}
}
