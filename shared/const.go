package shared

const (
	CategoryIntelligence = "INTELLIGENCE"
	CategoryStrength     = "STRENGTH"
	CategoryVitality     = "VITALITY"
	CategoryCreativity   = "CREATIVITY"
	CategorySocial       = "SOCIAL"

	BucketDaily   = "daily"
	BucketWeekly  = "weekly"
	BucketMonthly = "monthly"

	StatusPending = "pending"
	StatusLate    = "late"
	StatusDone    = "done"

	ModeTimer     = "timer"
	ModeStopwatch = "stopwatch"

	PhaseIdle    = "idle"
	PhaseRunning = "running"
	PhasePaused  = "paused"

	AttrIntelligence = "intelligence"
	AttrStrength     = "strength"
	AttrVitality     = "vitality"
	AttrCreativity   = "creativity"
	AttrSocial       = "social"
)

// AttributeNames is the fixed attribute set, in display order.
var AttributeNames = []string{
	AttrIntelligence,
	AttrStrength,
	AttrVitality,
	AttrCreativity,
	AttrSocial,
}

// CategoryAttribute maps a mission category to the attribute it trains.
var CategoryAttribute = map[string]string{
	CategoryIntelligence: AttrIntelligence,
	CategoryStrength:     AttrStrength,
	CategoryVitality:     AttrVitality,
	CategoryCreativity:   AttrCreativity,
	CategorySocial:       AttrSocial,
}

func IsValidBucket(b string) bool {
	switch b {
	case BucketDaily, BucketWeekly, BucketMonthly:
		return true
	}
	return false
}

func IsValidCategory(c string) bool {
	_, ok := CategoryAttribute[c]
	return ok
}

func IsValidAttribute(a string) bool {
	for _, name := range AttributeNames {
		if name == a {
			return true
		}
	}
	return false
}
