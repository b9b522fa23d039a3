package services

import (
	"testing"
	"time"

	"github.com/ascend-app/ascend_api/dto"
	"github.com/ascend-app/ascend_api/shared"
)

func newTestFocusService(t *testing.T) (*FocusService, *SqlService) {
	t.Helper()
	sqlSvc := newTestSqlService(t)
	focusSvc := &FocusService{
		sqlSvc:         sqlSvc,
		redisSvc:       &RedisService{},
		progSvc:        &ProgressionService{sqlSvc: sqlSvc, redisSvc: &RedisService{}},
		mode:           shared.ModeTimer,
		phase:          shared.PhaseIdle,
		plannedSeconds: DefaultTimerSeconds,
	}
	return focusSvc, sqlSvc
}

func tick(svc *FocusService, n int) {
	for i := 0; i < n; i++ {
		svc.Tick()
	}
}

func TestTimerAutoFinish(t *testing.T) {
	focusSvc, sqlSvc := newTestFocusService(t)

	if _, err := focusSvc.SetDuration(dto.SetDurationRequest{Seconds: 10}); err != nil {
		t.Fatalf("SetDuration: %v", err)
	}
	if _, err := focusSvc.StartFocus(); err != nil {
		t.Fatalf("StartFocus: %v", err)
	}

	tick(focusSvc, 9)
	state := focusSvc.State()
	if state.Phase != shared.PhaseRunning {
		t.Fatalf("phase = %q, want running", state.Phase)
	}
	if state.ElapsedSeconds != 9 || state.RemainingSeconds != 1 {
		t.Errorf("elapsed=%d remaining=%d, want 9/1", state.ElapsedSeconds, state.RemainingSeconds)
	}

	// The tenth tick completes the run
	tick(focusSvc, 1)
	state = focusSvc.State()
	if state.Phase != shared.PhaseIdle {
		t.Fatalf("phase after auto-finish = %q, want idle", state.Phase)
	}

	day := time.Now().Format("2006-01-02")
	sessions, err := sqlSvc.Focus().GetSessionsByDay(day)
	if err != nil {
		t.Fatalf("GetSessionsByDay: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(sessions))
	}
	if sessions[0].ElapsedSeconds != 10 || !sessions[0].Completed {
		t.Errorf("session elapsed=%d completed=%v, want 10/true",
			sessions[0].ElapsedSeconds, sessions[0].Completed)
	}
	if sessions[0].Mode != shared.ModeTimer {
		t.Errorf("mode = %q, want timer", sessions[0].Mode)
	}
	if sessions[0].StartedAt.IsZero() {
		t.Error("session start instant not recorded")
	}
	if got := sessions[0].StartedAt.Format("2006-01-02"); got != sessions[0].Day {
		t.Errorf("day %q does not match start date %q", sessions[0].Day, got)
	}
	if sessions[0].CreatedAt.Before(sessions[0].StartedAt) {
		t.Error("session end precedes its start")
	}

	// A committed run counts toward the focus streak
	profile, err := focusSvc.progSvc.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.FocusStreak != 1 {
		t.Errorf("focus streak = %d, want 1", profile.FocusStreak)
	}
	if profile.MissionStreak != 0 {
		t.Errorf("mission streak = %d, want 0", profile.MissionStreak)
	}
}

func TestPauseResumeFinish(t *testing.T) {
	focusSvc, sqlSvc := newTestFocusService(t)

	if _, err := focusSvc.SetDuration(dto.SetDurationRequest{Seconds: 60}); err != nil {
		t.Fatalf("SetDuration: %v", err)
	}
	if _, err := focusSvc.StartFocus(); err != nil {
		t.Fatalf("StartFocus: %v", err)
	}

	tick(focusSvc, 4)
	if _, err := focusSvc.PauseFocus(); err != nil {
		t.Fatalf("PauseFocus: %v", err)
	}

	// Paused clock ignores ticks
	tick(focusSvc, 100)
	if got := focusSvc.State().ElapsedSeconds; got != 4 {
		t.Fatalf("elapsed while paused = %d, want 4", got)
	}

	if _, err := focusSvc.StartFocus(); err != nil {
		t.Fatalf("resume: %v", err)
	}
	tick(focusSvc, 3)

	result, err := focusSvc.FinishFocus()
	if err != nil {
		t.Fatalf("FinishFocus: %v", err)
	}
	if result.Session == nil {
		t.Fatal("no session committed")
	}
	if result.Session.ElapsedSeconds != 7 {
		t.Errorf("elapsed = %d, want 7", result.Session.ElapsedSeconds)
	}
	if !result.Session.Completed {
		t.Error("finished session not marked completed")
	}
	if result.State.Phase != shared.PhaseIdle {
		t.Errorf("phase = %q, want idle", result.State.Phase)
	}

	sessions, err := sqlSvc.Focus().GetSessionsByDay(time.Now().Format("2006-01-02"))
	if err != nil {
		t.Fatalf("GetSessionsByDay: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(sessions))
	}
}

func TestResetCommitsAbandonedRun(t *testing.T) {
	focusSvc, sqlSvc := newTestFocusService(t)

	if _, err := focusSvc.SetMode(dto.SetModeRequest{Mode: shared.ModeStopwatch}); err != nil {
		t.Fatalf("SetMode: %v", err)
	}
	if _, err := focusSvc.StartFocus(); err != nil {
		t.Fatalf("StartFocus: %v", err)
	}
	tick(focusSvc, 5)

	result, err := focusSvc.ResetFocus()
	if err != nil {
		t.Fatalf("ResetFocus: %v", err)
	}
	if result.Session == nil {
		t.Fatal("abandoned run not committed")
	}
	if result.Session.Completed {
		t.Error("abandoned run marked completed")
	}
	if result.Session.ElapsedSeconds != 5 {
		t.Errorf("elapsed = %d, want 5", result.Session.ElapsedSeconds)
	}
	if result.Session.Mode != shared.ModeStopwatch {
		t.Errorf("mode = %q, want stopwatch", result.Session.Mode)
	}

	sessions, err := sqlSvc.Focus().GetSessionsByDay(time.Now().Format("2006-01-02"))
	if err != nil {
		t.Fatalf("GetSessionsByDay: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(sessions))
	}
}

func TestFinishFromIdleIsNoop(t *testing.T) {
	focusSvc, sqlSvc := newTestFocusService(t)

	result, err := focusSvc.FinishFocus()
	if err != nil {
		t.Fatalf("FinishFocus: %v", err)
	}
	if result.Session != nil {
		t.Error("idle finish produced a session")
	}

	sessions, err := sqlSvc.Focus().GetSessionsByDay(time.Now().Format("2006-01-02"))
	if err != nil {
		t.Fatalf("GetSessionsByDay: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("sessions = %d, want 0", len(sessions))
	}
}

func TestStateGuards(t *testing.T) {
	focusSvc, _ := newTestFocusService(t)

	// Pause with nothing running
	if _, err := focusSvc.PauseFocus(); err == nil {
		t.Error("expected error pausing from idle")
	}

	if _, err := focusSvc.StartFocus(); err != nil {
		t.Fatalf("StartFocus: %v", err)
	}

	// Double start
	if _, err := focusSvc.StartFocus(); err == nil {
		t.Error("expected error starting a running session")
	}

	// No mode or duration changes mid-run
	if _, err := focusSvc.SetMode(dto.SetModeRequest{Mode: shared.ModeStopwatch}); err == nil {
		t.Error("expected error changing mode while running")
	}
	if _, err := focusSvc.SetDuration(dto.SetDurationRequest{Seconds: 30}); err == nil {
		t.Error("expected error changing duration while running")
	}

	if _, err := focusSvc.ResetFocus(); err != nil {
		t.Fatalf("ResetFocus: %v", err)
	}

	// Duration edits are timer-only
	if _, err := focusSvc.SetMode(dto.SetModeRequest{Mode: shared.ModeStopwatch}); err != nil {
		t.Fatalf("SetMode: %v", err)
	}
	if _, err := focusSvc.SetDuration(dto.SetDurationRequest{Seconds: 30}); err == nil {
		t.Error("expected error setting duration in stopwatch mode")
	}
}

func TestGetHistory(t *testing.T) {
	focusSvc, _ := newTestFocusService(t)

	// Two runs today
	if _, err := focusSvc.SetDuration(dto.SetDurationRequest{Seconds: 10}); err != nil {
		t.Fatalf("SetDuration: %v", err)
	}
	if _, err := focusSvc.StartFocus(); err != nil {
		t.Fatalf("StartFocus: %v", err)
	}
	tick(focusSvc, 10)

	if _, err := focusSvc.StartFocus(); err != nil {
		t.Fatalf("StartFocus: %v", err)
	}
	tick(focusSvc, 4)
	if _, err := focusSvc.ResetFocus(); err != nil {
		t.Fatalf("ResetFocus: %v", err)
	}

	today := time.Now().Format("2006-01-02")
	history, err := focusSvc.GetHistory(today)
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}

	if history.Day.TotalSeconds != 14 {
		t.Errorf("total = %d, want 14", history.Day.TotalSeconds)
	}
	if len(history.Day.Sessions) != 2 {
		t.Fatalf("sessions = %d, want 2", len(history.Day.Sessions))
	}

	// Total always equals the session sum
	sum := 0
	for _, s := range history.Day.Sessions {
		sum += s.ElapsedSeconds
	}
	if history.Day.TotalSeconds != sum {
		t.Errorf("total %d != session sum %d", history.Day.TotalSeconds, sum)
	}

	if len(history.WeeklySeries) != 7 {
		t.Fatalf("weekly series len = %d, want 7", len(history.WeeklySeries))
	}
	if len(history.Recent) != 2 {
		t.Errorf("recent sessions = %d, want 2", len(history.Recent))
	}

	// Today's slot holds today's total, the week starts Monday
	now := time.Now()
	idx := shared.MondayIndex(now.Weekday())
	if history.WeeklySeries[idx] != 14 {
		t.Errorf("series[%d] = %d, want 14", idx, history.WeeklySeries[idx])
	}
	weekStart := mustDate(t, history.WeekStart)
	if weekStart.Weekday() != time.Monday {
		t.Errorf("week start %s is %s, want Monday", history.WeekStart, weekStart.Weekday())
	}

	// A day with no sessions reports zeros, not an error
	empty, err := focusSvc.GetHistory("2000-01-01")
	if err != nil {
		t.Fatalf("GetHistory empty day: %v", err)
	}
	if empty.Day.TotalSeconds != 0 || len(empty.Day.Sessions) != 0 {
		t.Errorf("empty day total=%d sessions=%d", empty.Day.TotalSeconds, len(empty.Day.Sessions))
	}
	for i, v := range empty.WeeklySeries {
		if v != 0 {
			t.Errorf("empty series[%d] = %d, want 0", i, v)
		}
	}

	// Malformed dates are rejected
	if _, err := focusSvc.GetHistory("not-a-date"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}
