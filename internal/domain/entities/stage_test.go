package entities

import "testing"

func TestStageFromServiceStatus(t *testing.T) {
	cases := []struct {
		status ServiceStatus
		want   RepairStage
	}{
		{ServiceStatusNone, StageRegistered},
		{ServiceStatusRegistered, StageRegistered},
		{ServiceStatusInRepair, StageRepairing},
		{ServiceStatusRepairFinished, StageRepairCompleted},
		{ServiceStatusReceived, StagePickedUp},
		{ServiceStatus("garbage"), StageRegistered},
	}

	for _, tc := range cases {
		if got := StageFromServiceStatus(tc.status); got != tc.want {
			t.Fatalf("StageFromServiceStatus(%q) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestServiceStatusForStageRoundTrip(t *testing.T) {
	for _, stage := range []RepairStage{StageRepairing, StageRepairCompleted, StagePickedUp} {
		if got := StageFromServiceStatus(ServiceStatusForStage(stage)); got != stage {
			t.Fatalf("round trip for %v returned %v", stage, got)
		}
	}
	if ServiceStatusForStage(StageRegistered) != ServiceStatusRegistered {
		t.Fatalf("expected Registered status for registered stage")
	}
}

func TestCanAdvanceTo(t *testing.T) {
	if !StageRepairing.CanAdvanceTo(StageRepairCompleted) {
		t.Fatalf("expected repairing -> repair completed to be allowed")
	}
	if !StageRepairCompleted.CanAdvanceTo(StagePickedUp) {
		t.Fatalf("expected repair completed -> picked up to be allowed")
	}
	if StageRegistered.CanAdvanceTo(StageRepairCompleted) {
		t.Fatalf("skip must be rejected")
	}
	if StageRepairing.CanAdvanceTo(StageRegistered) {
		t.Fatalf("regression must be rejected")
	}
	if StageRepairing.CanAdvanceTo(StageRepairing) {
		t.Fatalf("self transition must be rejected")
	}
	if StagePickedUp.CanAdvanceTo(StagePickedUp + 1) {
		t.Fatalf("final stage must not advance")
	}
}

func TestParseRepairStage(t *testing.T) {
	if got, ok := ParseRepairStage("REPAIR_COMPLETED"); !ok || got != StageRepairCompleted {
		t.Fatalf("unexpected parse result: %v %v", got, ok)
	}
	if _, ok := ParseRepairStage("DONE"); ok {
		t.Fatalf("unknown stage name must not parse")
	}
}

func TestTimelineProjection(t *testing.T) {
	steps := Timeline(StageRepairing)
	if len(steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(steps))
	}
	wantStates := []StepState{StepCompleted, StepActive, StepPending, StepPending}
	for i, want := range wantStates {
		if steps[i].State != want {
			t.Fatalf("step %d: got %s, want %s", i, steps[i].State, want)
		}
	}
	if steps[1].Label != "수리 중" {
		t.Fatalf("unexpected label for active step: %s", steps[1].Label)
	}

	last := Timeline(StagePickedUp)
	for i := 0; i < 3; i++ {
		if last[i].State != StepCompleted {
			t.Fatalf("final stage: step %d should be completed", i)
		}
	}
	if last[3].State != StepActive {
		t.Fatalf("final stage must render active, got %s", last[3].State)
	}
}
