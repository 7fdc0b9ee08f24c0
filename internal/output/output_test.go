package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestUptime(t *testing.T) {
	cases := []struct {
		seconds uint64
		want    string
	}{
		{0, "0s"},
		{30, "30s"},
		{59, "59s"},
		{60, "1m 0s"},
		{90, "1m 30s"},
		{3599, "59m 59s"},
		{3600, "1h 0m 0s"},
		{3661, "1h 1m 1s"},
		{7200, "2h 0m 0s"},
		{86399, "23h 59m 59s"},
		{86400, "1d 0h 0m 0s"},
		{90061, "1d 1h 1m 1s"},
		{172800, "2d 0h 0m 0s"},
		{2*86400 + 5*3600 + 30*60 + 45, "2d 5h 30m 45s"},
		{365 * 86400, "365d 0h 0m 0s"},
		{100*86400 + 12*3600 + 34*60 + 56, "100d 12h 34m 56s"},
	}
	for _, tc := range cases {
		if got := Uptime(tc.seconds); got != tc.want {
			t.Fatalf("Uptime(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestBarCells(t *testing.T) {
	cases := []struct {
		usage, max uint64
		want       int
	}{
		{0, 100, 0},
		{50, 100, 20},
		{100, 100, 40},
		{200, 100, 40},
		{1, 100, 0},
		{0, 0, 0},
	}
	for _, tc := range cases {
		if got := barCells(tc.usage, tc.max); got != tc.want {
			t.Fatalf("barCells(%d, %d) = %d, want %d", tc.usage, tc.max, got, tc.want)
		}
	}
}

func TestConfirm(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"  y  \n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"", false},
		{"maybe\n", false},
	}
	for _, tc := range cases {
		var out bytes.Buffer
		got := Confirm(strings.NewReader(tc.input), &out, "proceed? [y/N]")
		if got != tc.want {
			t.Fatalf("Confirm(%q) = %v, want %v", tc.input, got, tc.want)
		}
		if !strings.Contains(out.String(), "proceed? [y/N]") {
			t.Fatalf("prompt missing from output: %q", out.String())
		}
	}
}
