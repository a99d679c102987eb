package client

import (
	"time"

	"github.com/disiplinli/kocumnet-back/internal/timegate"
)

// The today payload carries the authoritative gate state; these
// re-exports let the countdown tick locally between fetches using the
// same fixed UTC+3 arithmetic.

func CheckinOpenAt(now time.Time) bool        { return timegate.Open(now) }
func CheckinCountdownAt(now time.Time) string { return timegate.Countdown(now) }

// Wizard steps of the end-of-day check-in.
const (
	StepCompletion = 0
	StepDifficulty = 1
	StepCorrection = 2
)

// CheckInWizard models the 3-step evaluation flow. Each step must hold
// a chosen value before the next (or save) control enables.
type CheckInWizard struct {
	CompletionPct *int
	DifficultyTag string
	CorrectionTag string
}

// CanProceed reports whether the given step has a value chosen.
func (w *CheckInWizard) CanProceed(step int) bool {
	switch step {
	case StepCompletion:
		return w.CompletionPct != nil
	case StepDifficulty:
		return w.DifficultyTag != ""
	case StepCorrection:
		return w.CorrectionTag != ""
	default:
		return false
	}
}

// CanSave requires every step answered.
func (w *CheckInWizard) CanSave() bool {
	return w.CanProceed(StepCompletion) && w.CanProceed(StepDifficulty) && w.CanProceed(StepCorrection)
}

// Payload builds the submission body; callers must check CanSave first.
func (w *CheckInWizard) Payload() CheckInPayload {
	pct := 0
	if w.CompletionPct != nil {
		pct = *w.CompletionPct
	}
	return CheckInPayload{
		CompletionPct: pct,
		DifficultyTag: w.DifficultyTag,
		CorrectionTag: w.CorrectionTag,
	}
}
