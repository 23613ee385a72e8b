package model

// Step is a position in the booking flow.
type Step int

const (
	StepDetails Step = iota
	StepTable
	StepMenu
	StepPayment
	StepConfirmation
)

var stepNames = [...]string{"details", "table", "menu", "payment", "confirmation"}

// Steps lists every position in order. Payment stays listed even when skipped.
func Steps() []Step {
	return []Step{StepDetails, StepTable, StepMenu, StepPayment, StepConfirmation}
}

func (s Step) String() string {
	if s < StepDetails || s > StepConfirmation {
		return "unknown"
	}

	return stepNames[s]
}

type StepStatus string

const (
	StepStatusCompleted StepStatus = "completed"
	StepStatusCurrent   StepStatus = "current"
	StepStatusUpcoming  StepStatus = "upcoming"
	StepStatusSkipped   StepStatus = "skipped"
)

type StepIndicator struct {
	Position int        `json:"position"`
	Step     string     `json:"step"`
	Status   StepStatus `json:"status"`
}

// Indicators renders the five positions of the flow for the given current step.
func Indicators(current Step, paymentSkipped bool) []StepIndicator {
	steps := Steps()
	indicators := make([]StepIndicator, len(steps))

	for i, step := range steps {
		status := StepStatusUpcoming

		switch {
		case step == StepPayment && paymentSkipped:
			status = StepStatusSkipped
		case step == current:
			status = StepStatusCurrent
		case step < current:
			status = StepStatusCompleted
		}

		indicators[i] = StepIndicator{
			Position: i + 1,
			Step:     step.String(),
			Status:   status,
		}
	}

	return indicators
}
