package entities

// RepairStage is the linear repair lifecycle:
//
//	StageRegistered -> StageRepairing -> StageRepairCompleted -> StagePickedUp
//
// There are no back-transitions. StageRegistered -> StageRepairing happens
// only through estimate confirmation; the remaining transitions are external
// events accepted through the stage-advance hook, which validates that the
// requested stage is the immediate successor.

type RepairStage int

const (
	StageRegistered RepairStage = iota
	StageRepairing
	StageRepairCompleted
	StagePickedUp
)

var stageNames = [...]string{
	StageRegistered:      "REGISTERED",
	StageRepairing:       "REPAIRING",
	StageRepairCompleted: "REPAIR_COMPLETED",
	StagePickedUp:        "PICKED_UP",
}

// Timeline step labels as shown in the consumer app.
var stageLabels = [...]string{
	StageRegistered:      "접수 완료",
	StageRepairing:       "수리 중",
	StageRepairCompleted: "수리 완료",
	StagePickedUp:        "수령 완료",
}

func (s RepairStage) String() string {
	if s < StageRegistered || s > StagePickedUp {
		return "REGISTERED"
	}
	return stageNames[s]
}

// Label returns the user-facing timeline label for the stage.
func (s RepairStage) Label() string {
	if s < StageRegistered || s > StagePickedUp {
		return stageLabels[StageRegistered]
	}
	return stageLabels[s]
}

// ParseRepairStage resolves a stage name used on the API boundary.
func ParseRepairStage(name string) (RepairStage, bool) {
	for i, n := range stageNames {
		if n == name {
			return RepairStage(i), true
		}
	}
	return StageRegistered, false
}

// StageFromServiceStatus maps a stored service status to its lifecycle stage.
// Unknown values map to StageRegistered.
func StageFromServiceStatus(status ServiceStatus) RepairStage {
	switch status {
	case ServiceStatusInRepair:
		return StageRepairing
	case ServiceStatusRepairFinished:
		return StageRepairCompleted
	case ServiceStatusReceived:
		return StagePickedUp
	default:
		return StageRegistered
	}
}

// ServiceStatusForStage is the inverse mapping used when an external stage
// advance is persisted back onto the device.
func ServiceStatusForStage(stage RepairStage) ServiceStatus {
	switch stage {
	case StageRepairing:
		return ServiceStatusInRepair
	case StageRepairCompleted:
		return ServiceStatusRepairFinished
	case StagePickedUp:
		return ServiceStatusReceived
	default:
		return ServiceStatusRegistered
	}
}

// CanAdvanceTo reports whether next is the immediate successor of s.
// Skips, regressions and self-transitions are all rejected.
func (s RepairStage) CanAdvanceTo(next RepairStage) bool {
	return next == s+1 && next <= StagePickedUp
}

// StepState marks how a timeline step renders relative to the current stage.

type StepState string

const (
	StepCompleted StepState = "completed"
	StepActive    StepState = "active"
	StepPending   StepState = "pending"
)

// TimelineStep is one row of the four-step repair timeline.

type TimelineStep struct {
	Stage RepairStage `json:"stage"`
	Label string      `json:"label"`
	State StepState   `json:"state"`
}

// Timeline projects the current stage onto the ordered step list: every step
// before the current stage is completed, the current one is active, the rest
// are pending. Pure function, nothing here is stored.
func Timeline(current RepairStage) []TimelineStep {
	steps := make([]TimelineStep, 0, len(stageNames))
	for i := range stageNames {
		stage := RepairStage(i)
		state := StepPending
		switch {
		case stage < current:
			state = StepCompleted
		case stage == current:
			state = StepActive
		}
		steps = append(steps, TimelineStep{Stage: stage, Label: stage.Label(), State: state})
	}
	return steps
}
