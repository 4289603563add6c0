package enum

import "encoding/json"

// ExportState is a state of the export gate state machine.
// Idle -> Checking -> {Exporting -> Committing -> Idle} | DeniedExpired | DeniedLimitReached
type ExportState int

const (
	ExportStateIdle               ExportState = 0
	ExportStateChecking           ExportState = 1
	ExportStateExporting          ExportState = 2
	ExportStateCommitting         ExportState = 3
	ExportStateDeniedExpired      ExportState = 4
	ExportStateDeniedLimitReached ExportState = 5
)

func (s ExportState) String() string {
	names := [...]string{"Idle", "Checking", "Exporting", "Committing", "DeniedExpired", "DeniedLimitReached"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Idle"
	}
	return names[s]
}

// IsDenied reports whether s is one of the dead-end denial states that
// require explicit user action to leave
func (s ExportState) IsDenied() bool {
	return s == ExportStateDeniedExpired || s == ExportStateDeniedLimitReached
}

func (s ExportState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
