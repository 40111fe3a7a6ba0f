package engine

import (
	"errors"
	"fmt"
)

// RefusalCode is a machine-readable reason an action was rejected.
// Refusals are expected user-facing outcomes, not failures: the caller
// shows them to the player and carries on.
type RefusalCode string

const (
	RefusalWrongPhase    RefusalCode = "WRONG_PHASE"
	RefusalDead          RefusalCode = "PLAYER_DEAD"
	RefusalImprisoned    RefusalCode = "IMPRISONED"
	RefusalNamesRequired RefusalCode = "BIRTH_NAMES_REQUIRED"
	RefusalActivityCap   RefusalCode = "ACTIVITY_CAP"
	RefusalNoPartner     RefusalCode = "NO_PARTNER"
	RefusalNotCompatible RefusalCode = "NOT_COMPATIBLE"
	RefusalUnderage      RefusalCode = "UNDERAGE"
	RefusalNotFound      RefusalCode = "NOT_FOUND"
)

// Refusal is a typed rejection at the subsystem boundary.
type Refusal struct {
	Code   RefusalCode
	Reason string
}

func (r *Refusal) Error() string {
	return fmt.Sprintf("%s: %s", r.Code, r.Reason)
}

func refuse(code RefusalCode, format string, args ...any) *Refusal {
	return &Refusal{Code: code, Reason: fmt.Sprintf(format, args...)}
}

// AsRefusal unwraps a refusal from an error chain.
func AsRefusal(err error) (*Refusal, bool) {
	var r *Refusal
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
