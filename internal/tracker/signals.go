package tracker

// Signals are the upstream progress flags reported for a job.
type Signals struct {
	// Compared is set once the job description has been analyzed.
	Compared bool `json:"compared" yaml:"compared"`
	// Ranked is set once candidate profiles have been scored.
	Ranked bool `json:"ranked" yaml:"ranked"`
	// Emailed is set once the notification is ready to go out.
	Emailed bool `json:"emailed" yaml:"emailed"`
}

// Flag is a progress signal that distinguishes "not reported" from a reported false.
type Flag int8

const (
	FlagUnknown Flag = iota
	FlagFalse
	FlagTrue
)

func FlagOf(v bool) Flag {
	if v {
		return FlagTrue
	}
	return FlagFalse
}

// FlagFromPtr treats a nil pointer as an unreported signal.
func FlagFromPtr(v *bool) Flag {
	if v == nil {
		return FlagUnknown
	}
	return FlagOf(*v)
}

func (f Flag) Known() bool {
	return f == FlagTrue || f == FlagFalse
}

// Resolve collapses the flag for derivation. Unreported signals count as false.
func (f Flag) Resolve() bool {
	return f == FlagTrue
}

func (f Flag) String() string {
	switch f {
	case FlagTrue:
		return "true"
	case FlagFalse:
		return "false"
	default:
		return "unknown"
	}
}
