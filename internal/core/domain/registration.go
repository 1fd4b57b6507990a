package domain

import "time"

// RegistrationState is the step a signup attempt is currently at.
type RegistrationState string

const (
	RegistrationCollecting   RegistrationState = "collecting_details"
	RegistrationAwaitingCode RegistrationState = "awaiting_code"
	RegistrationVerified     RegistrationState = "verified"
)

// registrationTransitions defines the allowed signup state machine moves.
var registrationTransitions = map[RegistrationState][]RegistrationState{
	RegistrationCollecting:   {RegistrationAwaitingCode},
	RegistrationAwaitingCode: {RegistrationVerified},
}

// CanTransitionTo reports whether a move from s to next is valid.
func (s RegistrationState) CanTransitionTo(next RegistrationState) bool {
	for _, allowed := range registrationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// RegistrationAttempt is the ephemeral per-email state of a two-step signup.
// It exists only between requesting a verification code and submitting it;
// the password is never part of it.
type RegistrationAttempt struct {
	ID          string            `json:"id"`
	Name        string            `json:"nombre"`
	Email       string            `json:"email"`
	State       RegistrationState `json:"state"`
	RequestedAt time.Time         `json:"requestedAt"`
}
