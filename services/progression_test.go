package services

import (
	"testing"
	"time"

	"github.com/ascend-app/ascend_api/dto"
	"github.com/ascend-app/ascend_api/model"
)

func TestXPNeededForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 40},
		{10, 43},
		{100, 70},
		{200, 100},
		{350, 145},
	}

	for _, tt := range tests {
		if got := XPNeededForLevel(tt.level); got != tt.want {
			t.Errorf("XPNeededForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}

	// Threshold never shrinks as levels rise
	prev := XPNeededForLevel(1)
	for level := 2; level <= 400; level++ {
		cur := XPNeededForLevel(level)
		if cur < prev {
			t.Fatalf("XPNeededForLevel(%d) = %d, less than previous %d", level, cur, prev)
		}
		prev = cur
	}
}

func TestRankForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, "E"},
		{1, "E"},
		{9, "E"},
		{10, "D"},
		{19, "D"},
		{20, "C"},
		{30, "B"},
		{40, "A"},
		{50, "S"},
		{99, "S"},
		{100, "SS"},
		{199, "SS"},
		{200, "SSS"},
		{349, "SSS"},
		{350, "X"},
		{1000, "X"},
	}

	for _, tt := range tests {
		if got := RankForLevel(tt.level); got != tt.want {
			t.Errorf("RankForLevel(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestNextRank(t *testing.T) {
	tests := []struct {
		level      int
		wantRank   string
		wantLevels int
	}{
		{0, "D", 10},
		{1, "D", 9},
		{10, "C", 10},
		{45, "S", 5},
		{349, "X", 1},
		{350, "", 0},
		{500, "", 0},
	}

	for _, tt := range tests {
		rank, levels := NextRank(tt.level)
		if rank != tt.wantRank || levels != tt.wantLevels {
			t.Errorf("NextRank(%d) = (%q, %d), want (%q, %d)",
				tt.level, rank, levels, tt.wantRank, tt.wantLevels)
		}
	}
}

func TestApplyXP(t *testing.T) {
	t.Run("no level up", func(t *testing.T) {
		p := &model.Profile{Level: 1}
		levels := applyXP(p, 39)
		if levels != 0 || p.Level != 1 || p.XP != 39 || p.SkillPoints != 0 {
			t.Errorf("got levels=%d level=%d xp=%d points=%d", levels, p.Level, p.XP, p.SkillPoints)
		}
	})

	t.Run("exact threshold levels once", func(t *testing.T) {
		p := &model.Profile{Level: 1}
		levels := applyXP(p, 40)
		if levels != 1 || p.Level != 2 || p.XP != 0 || p.SkillPoints != 1 {
			t.Errorf("got levels=%d level=%d xp=%d points=%d", levels, p.Level, p.XP, p.SkillPoints)
		}
	})

	t.Run("multi level up grants a point per level", func(t *testing.T) {
		// 40 for level 1, 40 for level 2, remainder 20
		p := &model.Profile{Level: 1}
		levels := applyXP(p, 100)
		if levels != 2 || p.Level != 3 || p.XP != 20 || p.SkillPoints != 2 {
			t.Errorf("got levels=%d level=%d xp=%d points=%d", levels, p.Level, p.XP, p.SkillPoints)
		}
	})

	t.Run("carries existing xp", func(t *testing.T) {
		p := &model.Profile{Level: 1, XP: 35}
		levels := applyXP(p, 10)
		if levels != 1 || p.Level != 2 || p.XP != 5 {
			t.Errorf("got levels=%d level=%d xp=%d", levels, p.Level, p.XP)
		}
	})

	t.Run("split grants compose", func(t *testing.T) {
		whole := &model.Profile{}
		applyXP(whole, 123)

		split := &model.Profile{}
		applyXP(split, 37)
		applyXP(split, 86)

		if split.Level != whole.Level || split.XP != whole.XP || split.SkillPoints != whole.SkillPoints {
			t.Errorf("split grants ended at level=%d xp=%d points=%d, one grant at level=%d xp=%d points=%d",
				split.Level, split.XP, split.SkillPoints, whole.Level, whole.XP, whole.SkillPoints)
		}
	})
}

func TestTouchStreak(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local)
		if err != nil {
			t.Fatalf("bad fixture date %q: %v", s, err)
		}
		return d
	}

	t.Run("first activity starts streak", func(t *testing.T) {
		streak := 0
		var last *time.Time
		touchStreak(&streak, &last, day("2026-03-10 09:00"))
		if streak != 1 {
			t.Errorf("streak = %d, want 1", streak)
		}
		if last == nil {
			t.Fatal("last-active marker not set")
		}
	})

	t.Run("same day keeps streak", func(t *testing.T) {
		streak := 4
		at := day("2026-03-10 09:00")
		last := &at
		touchStreak(&streak, &last, day("2026-03-10 22:00"))
		if streak != 4 {
			t.Errorf("streak = %d, want 4", streak)
		}
	})

	t.Run("next day extends streak", func(t *testing.T) {
		streak := 4
		at := day("2026-03-10 23:30")
		last := &at
		touchStreak(&streak, &last, day("2026-03-11 00:10"))
		if streak != 5 {
			t.Errorf("streak = %d, want 5", streak)
		}
	})

	t.Run("gap resets streak", func(t *testing.T) {
		streak := 9
		at := day("2026-03-10 09:00")
		last := &at
		touchStreak(&streak, &last, day("2026-03-13 09:00"))
		if streak != 1 {
			t.Errorf("streak = %d, want 1", streak)
		}
	})
}

func TestGrantXP(t *testing.T) {
	sqlSvc := newTestSqlService(t)
	progSvc := &ProgressionService{sqlSvc: sqlSvc, redisSvc: &RedisService{}}

	// 40 for level 0, 40 for level 1, remainder 20
	profile, levels, err := progSvc.GrantXP(100)
	if err != nil {
		t.Fatalf("GrantXP: %v", err)
	}
	if levels != 2 {
		t.Errorf("levels = %d, want 2", levels)
	}
	if profile.Level != 2 || profile.XP != 20 || profile.SkillPoints != 2 {
		t.Errorf("profile = level %d xp %d points %d", profile.Level, profile.XP, profile.SkillPoints)
	}
	if profile.MissionStreak != 1 {
		t.Errorf("mission streak = %d, want 1", profile.MissionStreak)
	}

	// Persisted, not just in memory
	again, err := progSvc.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if again.Level != 2 || again.XP != 20 {
		t.Errorf("reloaded profile = level %d xp %d", again.Level, again.XP)
	}
}

func TestFreshProfileStartsZeroed(t *testing.T) {
	sqlSvc := newTestSqlService(t)
	progSvc := &ProgressionService{sqlSvc: sqlSvc, redisSvc: &RedisService{}}

	profile, err := progSvc.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}

	if profile.Level != 0 || profile.XP != 0 || profile.SkillPoints != 0 {
		t.Errorf("fresh profile = level %d xp %d points %d, want all zero",
			profile.Level, profile.XP, profile.SkillPoints)
	}
	if profile.Name != "" {
		t.Errorf("fresh profile name = %q, want empty", profile.Name)
	}
	if profile.Rank != "E" {
		t.Errorf("fresh rank = %q, want E", profile.Rank)
	}
	for name, v := range profile.Attributes {
		if v != 0 {
			t.Errorf("attribute %s = %d, want 0", name, v)
		}
	}

	// The first rank is ten earned levels away
	if rank, levels := NextRank(profile.Level); rank != "D" || levels != 10 {
		t.Errorf("NextRank(0) = (%q, %d), want (D, 10)", rank, levels)
	}
}

func TestSpendAttribute(t *testing.T) {
	sqlSvc := newTestSqlService(t)
	progSvc := &ProgressionService{sqlSvc: sqlSvc, redisSvc: &RedisService{}}

	// No points yet
	_, err := progSvc.SpendAttribute(spendReq("intelligence"))
	if err == nil {
		t.Fatal("expected error spending with zero skill points")
	}

	if _, _, err := progSvc.GrantXP(40); err != nil {
		t.Fatalf("GrantXP: %v", err)
	}

	profile, err := progSvc.SpendAttribute(spendReq("intelligence"))
	if err != nil {
		t.Fatalf("SpendAttribute: %v", err)
	}
	if profile.SkillPoints != 0 {
		t.Errorf("skill points = %d, want 0", profile.SkillPoints)
	}
	if profile.Attributes["intelligence"] != 1 {
		t.Errorf("intelligence = %d, want 1", profile.Attributes["intelligence"])
	}

	// Unknown attribute rejected
	if _, err := progSvc.SpendAttribute(spendReq("luck")); err == nil {
		t.Fatal("expected error for unknown attribute")
	}
}

func TestUpdateNameOnlyOnce(t *testing.T) {
	sqlSvc := newTestSqlService(t)
	progSvc := &ProgressionService{sqlSvc: sqlSvc, redisSvc: &RedisService{}}

	profile, err := progSvc.UpdateName(dto.UpdateNameRequest{Name: "Hunter"})
	if err != nil {
		t.Fatalf("UpdateName: %v", err)
	}
	if profile.Name != "Hunter" {
		t.Errorf("name = %q, want Hunter", profile.Name)
	}

	if _, err := progSvc.UpdateName(dto.UpdateNameRequest{Name: "Other"}); err == nil {
		t.Fatal("expected error renaming an onboarded profile")
	}
}
