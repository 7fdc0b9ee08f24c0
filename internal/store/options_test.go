package store

import (
	"reflect"
	"testing"
)

func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		want Mode
	}{
		{"whitelist", ModeWhitelist},
		{"Whitelist", ModeWhitelist},
		{"WHITELIST", ModeWhitelist},
		{"blacklist", ModeBlacklist},
		{"default", ModeDefault},
		{"  default  ", ModeDefault},
	}
	for _, tc := range cases {
		got, err := ParseMode(tc.in)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseMode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseModeRejectsUnknownInput(t *testing.T) {
	_, err := ParseMode("greylist")
	if err == nil || err.Error() != "no match found for mode: 'greylist'" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestModeLabel(t *testing.T) {
	if got := ModeWhitelist.Label(); got != "whitelist" {
		t.Fatalf("Label = %q, want whitelist", got)
	}
}

func TestListKindTitle(t *testing.T) {
	if got := KindBlacklist.Title(); got != "Blacklist" {
		t.Fatalf("Title = %q, want Blacklist", got)
	}
}

func TestAddPatternRejectsDuplicate(t *testing.T) {
	var o ListOptions

	if !o.AddPattern(KindWhitelist, "firefox") {
		t.Fatal("first AddPattern should report true")
	}
	if o.AddPattern(KindWhitelist, "firefox") {
		t.Fatal("duplicate AddPattern should report false")
	}
	if !reflect.DeepEqual(o.Whitelist, []string{"firefox"}) {
		t.Fatalf("Whitelist = %v, want [firefox]", o.Whitelist)
	}
}

func TestRemovePatternCollapsesEmptiedList(t *testing.T) {
	var o ListOptions
	o.AddPattern(KindBlacklist, "steam")

	if err := o.RemovePattern(KindBlacklist, "steam"); err != nil {
		t.Fatalf("RemovePattern: %v", err)
	}
	if o.Blacklist != nil {
		t.Fatalf("emptied list should collapse to nil, got %v", o.Blacklist)
	}
}

func TestRemovePatternFromUnconfiguredList(t *testing.T) {
	var o ListOptions

	err := o.RemovePattern(KindWhitelist, "firefox")
	if err == nil || err.Error() != "whitelist is empty" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRemovePatternNotFound(t *testing.T) {
	var o ListOptions
	o.AddPattern(KindWhitelist, "firefox")

	err := o.RemovePattern(KindWhitelist, "chrome")
	if err == nil || err.Error() != "'chrome' not found in whitelist" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClearPatterns(t *testing.T) {
	var o ListOptions
	o.AddPattern(KindWhitelist, "firefox")
	o.AddPattern(KindWhitelist, "chrome")

	if got := o.ClearPatterns(KindWhitelist); got != 2 {
		t.Fatalf("ClearPatterns = %d, want 2", got)
	}
	if o.Whitelist != nil {
		t.Fatalf("cleared list should be nil, got %v", o.Whitelist)
	}
	if got := o.ClearPatterns(KindWhitelist); got != 0 {
		t.Fatalf("clearing an empty list = %d, want 0", got)
	}
}
