package app

import (
	"reflect"
	"testing"

	"github.com/ibra/lachesis/internal/store"
)

func TestListRejectsDateWithToday(t *testing.T) {
	a, _ := newTestApp(t)

	_, err := a.List(ListParams{Date: "2026-08-20", Today: true})
	if err == nil || err.Error() != "cannot specify both --date and --today" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListRejectsMalformedDate(t *testing.T) {
	a, _ := newTestApp(t)

	_, err := a.List(ListParams{Date: "20-08-2026"})
	if err == nil || err.Error() != "invalid date '20-08-2026' (expected YYYY-MM-DD)" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListAppliesModeAndRanking(t *testing.T) {
	a, dir := newTestApp(t)
	seed(t, dir, func(s *store.Store) {
		s.EnsureProcess(testMachine, "app1").AddTime(100)
		s.EnsureProcess(testMachine, "app2").AddTime(300)
		s.EnsureProcess(testMachine, "secret").AddTime(999)
		s.Options.Mode = store.ModeBlacklist
		s.Options.AddPattern(store.KindBlacklist, "secret")
	})

	res, err := a.List(ListParams{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if res.Mode != store.ModeBlacklist {
		t.Fatalf("Mode = %q, want Blacklist", res.Mode)
	}

	titles := make([]string, len(res.Report.Rows))
	for i, row := range res.Report.Rows {
		titles[i] = row.Title
	}
	if !reflect.DeepEqual(titles, []string{"app2", "app1"}) {
		t.Fatalf("rows = %v, want [app2 app1]", titles)
	}
}

func TestListCountsMachines(t *testing.T) {
	a, dir := newTestApp(t)
	seed(t, dir, func(s *store.Store) {
		s.EnsureProcess(testMachine, "app1").AddTime(10)
		s.EnsureProcess("other_host", "app2").AddTime(20)
	})

	res, err := a.List(ListParams{AllMachines: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if res.Machines != 2 {
		t.Fatalf("Machines = %d, want 2", res.Machines)
	}
	if len(res.Report.Rows) != 2 {
		t.Fatalf("rows = %d, want both machines' processes", len(res.Report.Rows))
	}
}
