package models

import "testing"

func TestPriorityFromExternal(t *testing.T) {
	cases := []struct {
		in   string
		want Priority
	}{
		{"low", PriorityOptional},
		{"medium", PriorityScheduled},
		{"high", PriorityUrgent},
		{"", PriorityScheduled},        // unknown -> middle bucket
		{"urgent", PriorityScheduled},  // internal vocab is not external vocab
		{"HIGH", PriorityScheduled},    // mapping is exact, callers lowercase
	}
	for _, tc := range cases {
		if got := PriorityFromExternal(tc.in); got != tc.want {
			t.Errorf("PriorityFromExternal(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDifficultyFromExternal(t *testing.T) {
	cases := []struct {
		in   string
		want Difficulty
	}{
		{"easy", DifficultyLight},
		{"moderate", DifficultyStandard},
		{"hard", DifficultyChallenging},
		{"", DifficultyStandard},
		{"nightmare", DifficultyStandard},
	}
	for _, tc := range cases {
		if got := DifficultyFromExternal(tc.in); got != tc.want {
			t.Errorf("DifficultyFromExternal(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestVocabRoundTrip(t *testing.T) {
	for _, p := range []Priority{PriorityUrgent, PriorityScheduled, PriorityOptional} {
		if got := PriorityFromExternal(PriorityToExternal(p)); got != p {
			t.Errorf("priority round trip %q -> %q", p, got)
		}
	}
	for _, d := range []Difficulty{DifficultyLight, DifficultyStandard, DifficultyChallenging} {
		if got := DifficultyFromExternal(DifficultyToExternal(d)); got != d {
			t.Errorf("difficulty round trip %q -> %q", d, got)
		}
	}
}

func TestXPForDifficulty(t *testing.T) {
	s := &UserSetting{XPLight: 5, XPStandard: 10, XPChallenging: 15}
	if got := s.XPForDifficulty(DifficultyLight); got != 5 {
		t.Fatalf("light=%d, want 5", got)
	}
	if got := s.XPForDifficulty(DifficultyChallenging); got != 15 {
		t.Fatalf("challenging=%d, want 15", got)
	}
	// unknown difficulty resolves to the standard value
	if got := s.XPForDifficulty(Difficulty("???")); got != 10 {
		t.Fatalf("unknown=%d, want 10", got)
	}
}
