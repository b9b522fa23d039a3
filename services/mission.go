package services

import (
	"sort"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/ascend-app/ascend_api/dto"
	"github.com/ascend-app/ascend_api/model"
	"github.com/ascend-app/ascend_api/shared"
)

// MissionService manages mission scheduling within the three time buckets
// and hands completed missions off to progression for XP.
type MissionService struct {
	context.DefaultService

	sqlSvc  *SqlService
	progSvc *ProgressionService
}

const MISSION_SVC = "mission_svc"

// LateXPFactor is applied to the reward of a mission completed past its
// deadline.
const LateXPFactor = 0.7

const DefaultXPReward = 10

func (svc MissionService) Id() string {
	return MISSION_SVC
}

func (svc *MissionService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *MissionService) Start() error {
	svc.sqlSvc = svc.Service(SQL_SVC).(*SqlService)
	svc.progSvc = svc.Service(PROGRESSION_SVC).(*ProgressionService)
	return nil
}

// missionStatus classifies a mission for display. A pending mission whose
// deadline day has passed is late.
func missionStatus(m *model.Mission, now time.Time) string {
	if m.Completed {
		return shared.StatusDone
	}
	if m.Late || shared.DateOnly(now).After(shared.DateOnly(m.Deadline)) {
		return shared.StatusLate
	}
	return shared.StatusPending
}

func statusOrder(status string) int {
	switch status {
	case shared.StatusLate:
		return 0
	case shared.StatusPending:
		return 1
	default:
		return 2
	}
}

func (svc *MissionService) CreateMission(req dto.CreateMissionRequest) (*dto.MissionResponse, error) {
	xpReward := req.XPReward
	if xpReward == 0 {
		xpReward = DefaultXPReward
	}

	mission := &model.Mission{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Bucket:      req.Bucket,
		XPReward:    xpReward,
		Deadline:    shared.BucketDeadline(req.Bucket, time.Now()),
	}

	if err := svc.sqlSvc.Missions().CreateMission(mission); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	log.WithFields(log.Fields{
		"id":     mission.ID,
		"bucket": mission.Bucket,
	}).Info("Mission created")

	svc.progSvc.invalidateStats()
	resp := svc.toMissionResponse(mission, time.Now())
	return &resp, nil
}

// ListMissions returns a bucket's missions ordered late, pending, done.
// Missions found past their deadline have the late flag persisted so the
// penalty survives the deadline window rolling over.
func (svc *MissionService) ListMissions(bucket string) (*dto.MissionListResponse, error) {
	if !shared.IsValidBucket(bucket) {
		return nil, shared.NewValidationError(nil, "Unknown bucket")
	}

	missions, err := svc.sqlSvc.Missions().GetMissionsByBucket(bucket)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	now := time.Now()
	for i := range missions {
		m := &missions[i]
		if !m.Completed && !m.Late && shared.DateOnly(now).After(shared.DateOnly(m.Deadline)) {
			m.Late = true
			if err := svc.sqlSvc.Missions().UpdateMission(m); err != nil {
				return nil, svc.sqlSvc.HandleError(err)
			}
		}
	}

	resp := &dto.MissionListResponse{
		Bucket:   bucket,
		Missions: make([]dto.MissionResponse, 0, len(missions)),
	}
	for i := range missions {
		resp.Missions = append(resp.Missions, svc.toMissionResponse(&missions[i], now))
	}

	sort.SliceStable(resp.Missions, func(i, j int) bool {
		return statusOrder(resp.Missions[i].Status) < statusOrder(resp.Missions[j].Status)
	})

	return resp, nil
}

func (svc *MissionService) GetMission(id int) (*dto.MissionResponse, error) {
	mission, err := svc.sqlSvc.Missions().GetMission(id)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	resp := svc.toMissionResponse(mission, time.Now())
	return &resp, nil
}

func (svc *MissionService) UpdateMission(id int, req dto.UpdateMissionRequest) (*dto.MissionResponse, error) {
	mission, err := svc.sqlSvc.Missions().GetMission(id)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	if req.Title != nil {
		mission.Title = *req.Title
	}
	if req.Description != nil {
		mission.Description = *req.Description
	}
	if req.Category != nil {
		mission.Category = *req.Category
	}
	if req.XPReward != nil {
		mission.XPReward = *req.XPReward
	}

	if err := svc.sqlSvc.Missions().UpdateMission(mission); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	svc.progSvc.invalidateStats()
	resp := svc.toMissionResponse(mission, time.Now())
	return &resp, nil
}

func (svc *MissionService) DeleteMission(id int) error {
	if err := svc.sqlSvc.Missions().DeleteMission(id); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	svc.progSvc.invalidateStats()
	return nil
}

// awardedXP is the reward actually granted on completion, reduced for late
// missions.
func awardedXP(m *model.Mission, now time.Time) int {
	if missionStatus(m, now) == shared.StatusLate || m.Late {
		return int(float64(m.XPReward) * LateXPFactor)
	}
	return m.XPReward
}

// ToggleMission flips completion. Completing grants XP, once; unchecking
// never claws XP back.
func (svc *MissionService) ToggleMission(id int) (*dto.ToggleMissionResponse, error) {
	mission, err := svc.sqlSvc.Missions().GetMission(id)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	now := time.Now()
	awarded := 0
	levelsUp := 0
	var profile *dto.ProfileResponse

	if mission.Completed {
		mission.Completed = false
		mission.CompletedAt = nil

		if err := svc.sqlSvc.Missions().UpdateMission(mission); err != nil {
			return nil, svc.sqlSvc.HandleError(err)
		}

		// The completing branch invalidates through GrantXP
		svc.progSvc.invalidateStats()

		profile, err = svc.progSvc.GetProfile()
		if err != nil {
			return nil, err
		}
	} else {
		if !mission.Late && shared.DateOnly(now).After(shared.DateOnly(mission.Deadline)) {
			mission.Late = true
		}

		awarded = awardedXP(mission, now)
		mission.Completed = true
		mission.CompletedAt = &now

		if err := svc.sqlSvc.Missions().UpdateMission(mission); err != nil {
			return nil, svc.sqlSvc.HandleError(err)
		}

		profile, levelsUp, err = svc.progSvc.GrantXP(awarded)
		if err != nil {
			return nil, err
		}

		recordMissionCompleted(awarded)
		log.WithFields(log.Fields{
			"id":         mission.ID,
			"awarded_xp": awarded,
			"late":       mission.Late,
		}).Info("Mission completed")
	}

	return &dto.ToggleMissionResponse{
		Mission:   svc.toMissionResponse(mission, now),
		AwardedXP: awarded,
		LevelsUp:  levelsUp,
		Profile:   *profile,
	}, nil
}

func (svc *MissionService) toMissionResponse(m *model.Mission, now time.Time) dto.MissionResponse {
	return dto.MissionResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		Bucket:      m.Bucket,
		XPReward:    m.XPReward,
		Deadline:    m.Deadline.Format("2006-01-02"),
		Status:      missionStatus(m, now),
		CompletedAt: m.CompletedAt,
	}
}
