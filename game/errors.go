package game

import "fmt"

// TableFullError is reported when a player tries to join a table with no
// empty seat. The join is a no-op.
type TableFullError struct {
	PlayerName string
}

func (e TableFullError) Error() string {
	return fmt.Sprintf("No empty seat for player %s", e.PlayerName)
}

// InvalidActionError is reported when a seat attempts a move that is not
// in its legal-action set, acts out of turn, or submits an out-of-range
// amount. The hand state is unchanged and the actor retains the turn.
type InvalidActionError struct {
	SeatNo int
	Action string
	Msg    string
}

func (e InvalidActionError) Error() string {
	return fmt.Sprintf("Seat %d cannot %s: %s", e.SeatNo, e.Action, e.Msg)
}

// HandInProgressError guards against re-entrant hand starts.
type HandInProgressError struct {
	HandNum uint32
}

func (e HandInProgressError) Error() string {
	return fmt.Sprintf("Hand %d is still being played", e.HandNum)
}

// HandNotActiveError is reported when an action arrives while no hand is
// being played.
type HandNotActiveError struct{}

func (e HandNotActiveError) Error() string {
	return "No hand is being played"
}

// NotEnoughPlayersError is reported when a hand cannot start because
// fewer than two seats are occupied.
type NotEnoughPlayersError struct {
	PlayerCount int
}

func (e NotEnoughPlayersError) Error() string {
	return fmt.Sprintf("Cannot start a hand with %d player(s)", e.PlayerCount)
}
