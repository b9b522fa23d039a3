package services

import (
	"testing"
	"time"

	"github.com/ascend-app/ascend_api/dto"
	"github.com/ascend-app/ascend_api/model"
	"github.com/ascend-app/ascend_api/shared"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", s, err)
	}
	return d
}

func TestMissionStatus(t *testing.T) {
	now := mustDate(t, "2026-03-11")

	tests := []struct {
		name    string
		mission model.Mission
		want    string
	}{
		{"pending before deadline", model.Mission{Deadline: mustDate(t, "2026-03-12")}, shared.StatusPending},
		{"pending on deadline day", model.Mission{Deadline: mustDate(t, "2026-03-11")}, shared.StatusPending},
		{"late after deadline", model.Mission{Deadline: mustDate(t, "2026-03-10")}, shared.StatusLate},
		{"sticky late flag", model.Mission{Deadline: mustDate(t, "2026-03-20"), Late: true}, shared.StatusLate},
		{"done wins over late", model.Mission{Deadline: mustDate(t, "2026-03-01"), Completed: true}, shared.StatusDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := missionStatus(&tt.mission, now); got != tt.want {
				t.Errorf("missionStatus = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAwardedXP(t *testing.T) {
	now := mustDate(t, "2026-03-11")

	onTime := model.Mission{XPReward: 10, Deadline: mustDate(t, "2026-03-11")}
	if got := awardedXP(&onTime, now); got != 10 {
		t.Errorf("on-time award = %d, want 10", got)
	}

	late := model.Mission{XPReward: 10, Deadline: mustDate(t, "2026-03-10")}
	if got := awardedXP(&late, now); got != 7 {
		t.Errorf("late award = %d, want 7", got)
	}

	// Truncated, never rounded up
	late.XPReward = 15
	if got := awardedXP(&late, now); got != 10 {
		t.Errorf("late award = %d, want 10", got)
	}
}

func newTestMissionService(t *testing.T) (*MissionService, *ProgressionService, *SqlService) {
	t.Helper()
	sqlSvc := newTestSqlService(t)
	progSvc := &ProgressionService{sqlSvc: sqlSvc, redisSvc: &RedisService{}}
	missionSvc := &MissionService{sqlSvc: sqlSvc, progSvc: progSvc}
	return missionSvc, progSvc, sqlSvc
}

func TestCreateMission(t *testing.T) {
	missionSvc, _, _ := newTestMissionService(t)

	first, err := missionSvc.CreateMission(dto.CreateMissionRequest{
		Title:    "Read 20 pages",
		Category: shared.CategoryIntelligence,
		Bucket:   shared.BucketDaily,
	})
	if err != nil {
		t.Fatalf("CreateMission: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("first id = %d, want 1", first.ID)
	}
	if first.XPReward != DefaultXPReward {
		t.Errorf("default reward = %d, want %d", first.XPReward, DefaultXPReward)
	}
	if first.Status != shared.StatusPending {
		t.Errorf("status = %q, want pending", first.Status)
	}
	if first.Deadline != time.Now().Format("2006-01-02") {
		t.Errorf("daily deadline = %s, want today", first.Deadline)
	}

	second, err := missionSvc.CreateMission(dto.CreateMissionRequest{
		Title:    "Morning workout",
		Category: shared.CategoryStrength,
		Bucket:   shared.BucketWeekly,
		XPReward: 25,
	})
	if err != nil {
		t.Fatalf("CreateMission: %v", err)
	}
	if second.ID != 2 {
		t.Errorf("second id = %d, want 2", second.ID)
	}
	if second.XPReward != 25 {
		t.Errorf("reward = %d, want 25", second.XPReward)
	}
}

func TestSequentialIDsAfterDelete(t *testing.T) {
	missionSvc, _, _ := newTestMissionService(t)

	for _, title := range []string{"a", "b", "c"} {
		if _, err := missionSvc.CreateMission(dto.CreateMissionRequest{
			Title:    title,
			Category: shared.CategoryVitality,
			Bucket:   shared.BucketDaily,
		}); err != nil {
			t.Fatalf("CreateMission: %v", err)
		}
	}

	if err := missionSvc.DeleteMission(2); err != nil {
		t.Fatalf("DeleteMission: %v", err)
	}

	next, err := missionSvc.CreateMission(dto.CreateMissionRequest{
		Title:    "d",
		Category: shared.CategoryVitality,
		Bucket:   shared.BucketDaily,
	})
	if err != nil {
		t.Fatalf("CreateMission: %v", err)
	}
	// max is 3, so the next id is 4 even with a hole at 2
	if next.ID != 4 {
		t.Errorf("id after delete = %d, want 4", next.ID)
	}
}

func TestToggleMission(t *testing.T) {
	missionSvc, progSvc, _ := newTestMissionService(t)

	created, err := missionSvc.CreateMission(dto.CreateMissionRequest{
		Title:    "Read 20 pages",
		Category: shared.CategoryIntelligence,
		Bucket:   shared.BucketDaily,
	})
	if err != nil {
		t.Fatalf("CreateMission: %v", err)
	}

	result, err := missionSvc.ToggleMission(created.ID)
	if err != nil {
		t.Fatalf("ToggleMission: %v", err)
	}
	if result.Mission.Status != shared.StatusDone {
		t.Errorf("status = %q, want done", result.Mission.Status)
	}
	if result.AwardedXP != DefaultXPReward {
		t.Errorf("awarded = %d, want %d", result.AwardedXP, DefaultXPReward)
	}
	if result.Profile.XP != DefaultXPReward {
		t.Errorf("profile xp = %d, want %d", result.Profile.XP, DefaultXPReward)
	}

	// Uncheck: completion clears but XP stays
	result, err = missionSvc.ToggleMission(created.ID)
	if err != nil {
		t.Fatalf("ToggleMission: %v", err)
	}
	if result.Mission.Status == shared.StatusDone {
		t.Error("mission still done after uncheck")
	}
	if result.AwardedXP != 0 {
		t.Errorf("awarded on uncheck = %d, want 0", result.AwardedXP)
	}

	profile, err := progSvc.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.XP != DefaultXPReward {
		t.Errorf("xp after uncheck = %d, want %d", profile.XP, DefaultXPReward)
	}

	// Re-complete grants again
	result, err = missionSvc.ToggleMission(created.ID)
	if err != nil {
		t.Fatalf("ToggleMission: %v", err)
	}
	if result.AwardedXP != DefaultXPReward {
		t.Errorf("awarded on re-complete = %d, want %d", result.AwardedXP, DefaultXPReward)
	}
}

func TestToggleLateMission(t *testing.T) {
	missionSvc, _, sqlSvc := newTestMissionService(t)

	created, err := missionSvc.CreateMission(dto.CreateMissionRequest{
		Title:    "Overdue task",
		Category: shared.CategoryCreativity,
		Bucket:   shared.BucketDaily,
	})
	if err != nil {
		t.Fatalf("CreateMission: %v", err)
	}

	// Push the deadline into the past
	mission, err := sqlSvc.Missions().GetMission(created.ID)
	if err != nil {
		t.Fatalf("GetMission: %v", err)
	}
	mission.Deadline = time.Now().AddDate(0, 0, -2)
	if err := sqlSvc.Missions().UpdateMission(mission); err != nil {
		t.Fatalf("UpdateMission: %v", err)
	}

	result, err := missionSvc.ToggleMission(created.ID)
	if err != nil {
		t.Fatalf("ToggleMission: %v", err)
	}
	if result.AwardedXP != 7 {
		t.Errorf("late awarded = %d, want 7", result.AwardedXP)
	}

	// The late flag persists
	mission, err = sqlSvc.Missions().GetMission(created.ID)
	if err != nil {
		t.Fatalf("GetMission: %v", err)
	}
	if !mission.Late {
		t.Error("late flag not persisted")
	}
}

func TestListMissionsOrdering(t *testing.T) {
	missionSvc, _, sqlSvc := newTestMissionService(t)

	titles := []string{"done", "late", "pending"}
	for _, title := range titles {
		if _, err := missionSvc.CreateMission(dto.CreateMissionRequest{
			Title:    title,
			Category: shared.CategorySocial,
			Bucket:   shared.BucketDaily,
		}); err != nil {
			t.Fatalf("CreateMission: %v", err)
		}
	}

	// Mission 1 completed, mission 2 overdue
	if _, err := missionSvc.ToggleMission(1); err != nil {
		t.Fatalf("ToggleMission: %v", err)
	}
	mission, err := sqlSvc.Missions().GetMission(2)
	if err != nil {
		t.Fatalf("GetMission: %v", err)
	}
	mission.Deadline = time.Now().AddDate(0, 0, -1)
	if err := sqlSvc.Missions().UpdateMission(mission); err != nil {
		t.Fatalf("UpdateMission: %v", err)
	}

	list, err := missionSvc.ListMissions(shared.BucketDaily)
	if err != nil {
		t.Fatalf("ListMissions: %v", err)
	}
	if len(list.Missions) != 3 {
		t.Fatalf("len = %d, want 3", len(list.Missions))
	}

	wantOrder := []string{shared.StatusLate, shared.StatusPending, shared.StatusDone}
	for i, want := range wantOrder {
		if list.Missions[i].Status != want {
			t.Errorf("position %d status = %q, want %q", i, list.Missions[i].Status, want)
		}
	}

	// Listing persisted the late flag
	mission, err = sqlSvc.Missions().GetMission(2)
	if err != nil {
		t.Fatalf("GetMission: %v", err)
	}
	if !mission.Late {
		t.Error("late flag not persisted by listing")
	}

	// Unknown bucket rejected
	if _, err := missionSvc.ListMissions("yearly"); err == nil {
		t.Fatal("expected error for unknown bucket")
	}
}

func TestStatsFollowMissionMutations(t *testing.T) {
	missionSvc, progSvc, _ := newTestMissionService(t)

	created, err := missionSvc.CreateMission(dto.CreateMissionRequest{
		Title:    "Read 20 pages",
		Category: shared.CategoryIntelligence,
		Bucket:   shared.BucketDaily,
	})
	if err != nil {
		t.Fatalf("CreateMission: %v", err)
	}

	stats, err := progSvc.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.MissionsPending != 1 || stats.MissionsCompleted != 0 {
		t.Errorf("after create pending=%d completed=%d, want 1/0",
			stats.MissionsPending, stats.MissionsCompleted)
	}

	if _, err := missionSvc.ToggleMission(created.ID); err != nil {
		t.Fatalf("ToggleMission: %v", err)
	}
	stats, err = progSvc.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.MissionsPending != 0 || stats.MissionsCompleted != 1 {
		t.Errorf("after toggle pending=%d completed=%d, want 0/1",
			stats.MissionsPending, stats.MissionsCompleted)
	}

	if err := missionSvc.DeleteMission(created.ID); err != nil {
		t.Fatalf("DeleteMission: %v", err)
	}
	stats, err = progSvc.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.MissionsCompleted != 0 {
		t.Errorf("after delete completed = %d, want 0", stats.MissionsCompleted)
	}
}
