package pattern

import "testing"

func TestMatchesAny(t *testing.T) {
	cases := []struct {
		name     string
		patterns []string
		want     bool
	}{
		{"firefox", nil, false},
		{"firefox", []string{}, false},
		{"firefox", []string{"firefox"}, true},
		{"firefox", []string{"chrome"}, false},
		{"firefox", []string{"^fire.*"}, true},
		{"my_game_x", []string{"game"}, true},
		{"editor", []string{"^ed$"}, false},
		{"c++", []string{"c++"}, true},
		{"mono", []string{"c++"}, false},
		{"slack", []string{"chrome", "sl.ck"}, true},
	}
	for _, tc := range cases {
		if got := MatchesAny(tc.name, tc.patterns); got != tc.want {
			t.Fatalf("MatchesAny(%q, %v) = %v, want %v", tc.name, tc.patterns, got, tc.want)
		}
	}
}

func TestMatchesAnyPrefersExactEquality(t *testing.T) {
	// "c++" is not a valid regex; equality must win before compilation.
	if !MatchesAny("c++", []string{"c++"}) {
		t.Fatal("exact match should not depend on the pattern compiling")
	}
}

func TestCompileRejectsMalformedPattern(t *testing.T) {
	if _, err := Compile("["); err == nil {
		t.Fatal("Compile should reject a malformed pattern")
	}
	re, err := Compile("^fire.*")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !re.MatchString("firefox") {
		t.Fatal("compiled pattern should match firefox")
	}
}

func TestLooksLikeRegex(t *testing.T) {
	cases := []struct {
		pattern string
		want    bool
	}{
		{"firefox", false},
		{"firefox.exe", false},
		{"^fire.*", true},
		{"game[0-9]", true},
		{"a|b", true},
		{`c:\tools`, true},
	}
	for _, tc := range cases {
		if got := LooksLikeRegex(tc.pattern); got != tc.want {
			t.Fatalf("LooksLikeRegex(%q) = %v, want %v", tc.pattern, got, tc.want)
		}
	}
}
