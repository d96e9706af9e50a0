package domain

// Outcome is the result of a garden command. Failures are routine and never
// mutate state; callers branch on them instead of handling errors.
type Outcome string

const (
	OutcomeOK                Outcome = "ok"
	OutcomePlotOutOfRange    Outcome = "plot_out_of_range"
	OutcomePlotOccupied      Outcome = "plot_occupied"
	OutcomePlotEmpty         Outcome = "plot_empty"
	OutcomeUnknownPlant      Outcome = "unknown_plant"
	OutcomePlantLocked       Outcome = "plant_locked"
	OutcomeUnknownUpgrade    Outcome = "unknown_upgrade"
	OutcomeInsufficientFunds Outcome = "insufficient_funds"
	OutcomeMaxLevel          Outcome = "max_level"
	OutcomeNotEligible       Outcome = "not_eligible"
	OutcomeNothingPending    Outcome = "nothing_pending"
)

var outcomeErrors = map[Outcome]error{
	OutcomePlotOutOfRange:    ErrPlotOutOfRange,
	OutcomePlotOccupied:      ErrPlotOccupied,
	OutcomePlotEmpty:         ErrPlotEmpty,
	OutcomeUnknownPlant:      ErrUnknownPlant,
	OutcomePlantLocked:       ErrPlantLocked,
	OutcomeUnknownUpgrade:    ErrUnknownUpgrade,
	OutcomeInsufficientFunds: ErrInsufficientFunds,
	OutcomeMaxLevel:          ErrMaxLevel,
	OutcomeNotEligible:       ErrPrestigeNotEligible,
	OutcomeNothingPending:    ErrNothingPending,
}

// OK reports whether the command succeeded
func (o Outcome) OK() bool {
	return o == OutcomeOK
}

// Err maps a failed outcome to its sentinel error, nil on success
func (o Outcome) Err() error {
	if o == OutcomeOK {
		return nil
	}
	if err, ok := outcomeErrors[o]; ok {
		return err
	}
	return ErrInvalidInput
}
