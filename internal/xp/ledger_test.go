package xp

import "testing"

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{1001, 2},
		{4999, 5},
		{5000, 6},
		{-50, 1},
	}
	for _, tc := range cases {
		if got := LevelForXP(tc.xp); got != tc.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tc.xp, got, tc.want)
		}
	}
}

func TestApply_DerivesLevelFromXP(t *testing.T) {
	l := NewLedger()
	var err error
	for i := 0; i < 7; i++ {
		l, err = Apply(l, 300)
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if l.Level != LevelForXP(l.XP) {
			t.Fatalf("level %d inconsistent with xp %d", l.Level, l.XP)
		}
	}
	if l.XP != 2100 || l.Level != 3 || l.TotalXPGained != 2100 {
		t.Fatalf("unexpected ledger after applies: %+v", l)
	}
}

func TestApply_RejectsNegativeDelta(t *testing.T) {
	l := Ledger{XP: 500, Level: 1, TotalXPGained: 500}
	got, err := Apply(l, -10)
	if err == nil {
		t.Fatal("expected error for negative delta")
	}
	if got != l {
		t.Fatalf("ledger mutated on rejected delta: %+v", got)
	}
}

func TestNormalize_RepairsCorruptValues(t *testing.T) {
	l := Normalize(Ledger{XP: -5, Level: 99, TotalXPGained: -1})
	if l.XP != 0 || l.Level != 1 || l.TotalXPGained != 0 {
		t.Fatalf("normalize did not repair: %+v", l)
	}

	l = Normalize(Ledger{XP: 2500, Level: 1, TotalXPGained: 100})
	if l.Level != 3 {
		t.Fatalf("level not rederived: %+v", l)
	}
	if l.TotalXPGained != 2500 {
		t.Fatalf("total below current xp not repaired: %+v", l)
	}
}

func TestToNextLevelAndProgress(t *testing.T) {
	l := Ledger{XP: 1250, Level: 2, TotalXPGained: 1250}
	if got := ToNextLevel(l); got != 750 {
		t.Fatalf("ToNextLevel = %d, want 750", got)
	}
	if got := LevelProgressPercent(l); got != 25 {
		t.Fatalf("LevelProgressPercent = %v, want 25", got)
	}

	if got := LevelProgressPercent(Ledger{XP: 0, Level: 1}); got != 0 {
		t.Fatalf("zero ledger progress = %v, want 0", got)
	}
}

func TestRankTitle(t *testing.T) {
	cases := map[int]string{
		1:  "Novice Reader",
		4:  "Novice Reader",
		5:  "Apprentice Scholar",
		10: "Advanced Learner",
		20: "Expert Reader",
		30: "Master Librarian",
		50: "Legendary Scholar",
		77: "Legendary Scholar",
	}
	for level, want := range cases {
		if got := RankTitle(level); got != want {
			t.Errorf("RankTitle(%d) = %q, want %q", level, got, want)
		}
	}
}
