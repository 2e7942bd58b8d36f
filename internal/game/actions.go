package game

// Action represents a player decision at the table
type Action int

const (
	Hit Action = iota
	Stand
	Double
	Split
)

func (a Action) String() string {
	return [...]string{"hit", "stand", "double", "split"}[a]
}

// State represents the round's position in its lifecycle
type State int

const (
	// StatePlayerTurn means a player hand is awaiting an action.
	StatePlayerTurn State = iota
	// StateComplete means all play is finished and the round awaits
	// settlement. Rounds decided at the natural check land here directly.
	StateComplete
	// StateSettled is terminal: outcomes applied to the bankroll.
	StateSettled
)

func (s State) String() string {
	return [...]string{"player_turn", "complete", "settled"}[s]
}

// Result classifies one hand's settlement
type Result int

const (
	Win Result = iota
	Loss
	Push
)

func (r Result) String() string {
	return [...]string{"win", "loss", "push"}[r]
}

// Outcome is the settlement of a single player hand: the result and the
// wager-relative amount won or lost (zero for a push). Split hands settle
// independently against the same dealer hand, in hand order.
type Outcome struct {
	Hand   int
	Result Result
	Amount int
}
