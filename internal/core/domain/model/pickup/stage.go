package pickup

import "agrimarket/internal/pkg/errs"

// Stage is one step of the pickup verification workflow. Progression is
// strictly linear: a partner may retreat to an earlier stage at any time
// but may only advance once the current stage's exit gate is satisfied.
type Stage int

const (
	StageUnknown Stage = iota
	StageLocation
	StageVerification
	StageConfirmation
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown:      "unknown",
		StageLocation:     "location",
		StageVerification: "verification",
		StageConfirmation: "confirmation",
	}
}

func getValidStageStrings() map[string]Stage {
	return map[string]Stage{
		"location":     StageLocation,
		"verification": StageVerification,
		"confirmation": StageConfirmation,
	}
}

// StageFromString parses the storage representation of a stage.
func StageFromString(value string) (Stage, error) {
	stage, ok := getValidStageStrings()[value]
	if !ok {
		return StageUnknown, errs.NewValueIsInvalidError("stage: " + value)
	}
	return stage, nil
}

// Validate ensures the stage is one of the three workflow stages.
func (s Stage) Validate() error {
	if s < StageLocation || s > StageConfirmation {
		return errs.NewValueIsInvalidError("stage")
	}
	return nil
}

func (s Stage) String() string {
	return getStageStrings()[s]
}

// IsFinal reports whether this is the last stage of the workflow.
func (s Stage) IsFinal() bool {
	return s == StageConfirmation
}

// Next returns the following stage. Calling Next on the final stage is a
// programming error guarded by the session's advance gate.
func (s Stage) Next() Stage {
	return s + 1
}

// Prev returns the preceding stage.
func (s Stage) Prev() Stage {
	return s - 1
}
