package domain

// Decision is the outcome of matching one message against the settings.
// Reply is empty when Outcome is OutcomeIgnore.
type Decision struct {
	Outcome Outcome
	Reply   string
}
