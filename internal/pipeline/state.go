package pipeline

// State is a step of the link-to-summary flow.
type State int

const (
	Idle State = iota
	AwaitingInput
	Extracting
	Fetching
	Prompting
	Generating
	Displaying
	Failed
)

var stateNames = [...]string{
	Idle:          "idle",
	AwaitingInput: "awaiting_input",
	Extracting:    "extracting",
	Fetching:      "fetching",
	Prompting:     "prompting",
	Generating:    "generating",
	Displaying:    "displaying",
	Failed:        "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
