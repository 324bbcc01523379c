package session

// State is the controller's position in the drill loop.
type State int

const (
	StateAwaitingSelection State = iota // Choosing the next person
	StateAwaitingAnswer                 // Portrait shown, waiting for input
	StateScoreUpdated                   // A guess was graded
	StateCommandHandled                 // show score or save was run
	StateShuttingDown                   // quit, end of input or interrupt
)

func (s State) String() string {
	switch s {
	case StateAwaitingSelection:
		return "awaiting-selection"
	case StateAwaitingAnswer:
		return "awaiting-answer"
	case StateScoreUpdated:
		return "score-updated"
	case StateCommandHandled:
		return "command-handled"
	case StateShuttingDown:
		return "shutting-down"
	default:
		return "unknown"
	}
}

// Reserved inputs. Matching is exact: anything else is a guess.
const (
	CommandShowScore = "show score"
	CommandSave      = "save"
	CommandQuit      = "quit"
)

// ShutdownReason records why a session ended.
type ShutdownReason string

const (
	ReasonQuit      ShutdownReason = "quit"
	ReasonEOF       ShutdownReason = "end of input"
	ReasonInterrupt ShutdownReason = "interrupt"
	ReasonError     ShutdownReason = "input error"
)

// Summary is the tally for one session.
type Summary struct {
	SessionID string
	Asked     int
	Correct   int
	Reason    ShutdownReason
}
