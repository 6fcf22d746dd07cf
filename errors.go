package arenax

// ArenaErr is the arena's recoverable error code. Static misconfiguration is
// never reported this way; it goes through the FaultReporter instead.
type ArenaErr int

const (
	ErrOK ArenaErr = iota
	ErrBadParam
	ErrStageCreate
	ErrStageAttach
	ErrStageDetach // reserved; no core operation detaches a stage
	ErrUnknown
)

// Must be in sync with the ArenaErr constants.
var errStrings = [...]string{
	"ok",
	"bad parameter",
	"error creating stage",
	"error attaching stage",
	"error detaching stage",
	"unknown error",
}

// ErrStr converts an ArenaErr to a diagnostic string. Total over all inputs:
// out-of-range codes map to the unknown-error string.
func ErrStr(err ArenaErr) string {
	if err < ErrOK || err > ErrUnknown {
		err = ErrUnknown
	}
	return errStrings[err]
}

// Error makes ArenaErr usable as an error at the provider boundary.
func (e ArenaErr) Error() string { return ErrStr(e) }
