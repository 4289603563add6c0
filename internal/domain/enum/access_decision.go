package enum

import "encoding/json"

// AccessDecision is the outcome of the usage/plan policy for an export attempt.
// It is derived on every attempt and never persisted.
type AccessDecision int

const (
	AccessAllowed             AccessDecision = 0
	AccessBlockedExpired      AccessDecision = 1
	AccessBlockedLimitReached AccessDecision = 2
)

func (d AccessDecision) String() string {
	names := [...]string{"Allow", "BlockExpired", "BlockLimitReached"}
	if int(d) < 0 || int(d) >= len(names) {
		return "Allow"
	}
	return names[d]
}

func (d AccessDecision) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
