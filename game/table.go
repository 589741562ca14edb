package game

import (
	"github.com/rs/zerolog/log"
)

var tableLogger = log.With().Str("logger_name", "game::table").Logger()

// DefaultTableSize seats a six-max table.
const DefaultTableSize = 6

// NoSeat is the sentinel returned by traversals that find no seat.
// Callers of NextActor must treat it as "betting round closed".
const NoSeat = -1

// Table is a fixed-capacity circular array of seats. Seat indices are
// stable for a seated player until removal; traversal order is always
// increasing index modulo the table size.
type Table struct {
	seats         []*Player
	tableSize     int
	playerCount   int
	nextEmptySeat int
}

func NewTable(tableSize int) *Table {
	if tableSize <= 0 {
		tableSize = DefaultTableSize
	}
	return &Table{
		seats:     make([]*Player, tableSize),
		tableSize: tableSize,
	}
}

func cyclicIncrement(incrementNumber int, maxNumber int) int {
	return (incrementNumber + 1) % maxNumber
}

// updateNextEmptySeat advances the empty-seat pointer until it points at
// an empty seat again.
func (t *Table) updateNextEmptySeat() {
	if t.playerCount == t.tableSize || t.seats[t.nextEmptySeat] == nil {
		return
	}
	for i := 0; i < t.tableSize; i++ {
		t.nextEmptySeat = cyclicIncrement(t.nextEmptySeat, t.tableSize)
		if t.seats[t.nextEmptySeat] == nil {
			break
		}
	}
}

// AddPlayer seats a player at the tracked empty seat.
func (t *Table) AddPlayer(name string, uuid string, buyIn float64) (int, error) {
	if t.playerCount == t.tableSize {
		tableLogger.Info().Str("playerName", name).Msg("Table is full")
		return NoSeat, TableFullError{PlayerName: name}
	}
	seatNo := t.nextEmptySeat
	t.seats[seatNo] = NewPlayer(name, uuid, buyIn)
	t.playerCount++
	t.updateNextEmptySeat()
	return seatNo, nil
}

// DisconnectPlayer marks the matching seat as disconnected.
func (t *Table) DisconnectPlayer(name string, uuid string) {
	for _, player := range t.seats {
		if player != nil && player.Name == name && player.UUID == uuid {
			player.Disconnect()
		}
	}
}

// RemoveDisconnected sweeps disconnected seats to empty.
func (t *Table) RemoveDisconnected() {
	t.removeMatching(func(p *Player) bool { return p.Disconnected })
}

// RemoveZeroChip sweeps busted seats to empty.
func (t *Table) RemoveZeroChip() {
	t.removeMatching(func(p *Player) bool { return p.Stack == 0 })
}

func (t *Table) removeMatching(matches func(*Player) bool) {
	for i, player := range t.seats {
		if player != nil && matches(player) {
			t.seats[i] = nil
			t.playerCount--
		}
	}
	t.updateNextEmptySeat()
}

// NextOccupied cyclically scans forward from index, skipping empty
// seats. Returns NoSeat when the table is empty.
func (t *Table) NextOccupied(index int) int {
	if t.playerCount == 0 {
		return NoSeat
	}
	for {
		index = cyclicIncrement((index+t.tableSize)%t.tableSize, t.tableSize)
		if t.seats[index] != nil {
			return index
		}
	}
}

// NextActor scans forward from index for the next seat that can still
// act, skipping empty, folded and all-in seats. Returns NoSeat when a
// full cycle completes without finding one.
func (t *Table) NextActor(index int) int {
	loopCount := 0
	for {
		index = t.NextOccupied(index)
		if index == NoSeat {
			return NoSeat
		}
		loopCount++
		if loopCount > t.playerCount {
			return NoSeat
		}
		if !t.seats[index].IsAllIn && !t.seats[index].Folded {
			return index
		}
	}
}

// Seat returns the player at the index, or nil for an empty seat.
func (t *Table) Seat(index int) *Player {
	return t.seats[index]
}

// Seats exposes the raw seat array. Empty seats are nil.
func (t *Table) Seats() []*Player {
	return t.seats
}

func (t *Table) PlayerCount() int {
	return t.playerCount
}

func (t *Table) TableSize() int {
	return t.tableSize
}

// CountLive counts the seats that have not folded. Derived from seat
// flags on demand so the count can never drift.
func (t *Table) CountLive() int {
	count := 0
	for _, player := range t.seats {
		if player != nil && !player.Folded {
			count++
		}
	}
	return count
}

// CountAllIn counts the live seats that are all in.
func (t *Table) CountAllIn() int {
	count := 0
	for _, player := range t.seats {
		if player != nil && !player.Folded && player.IsAllIn {
			count++
		}
	}
	return count
}

// FindPlayer locates a seat by player identity.
func (t *Table) FindPlayer(uuid string) (int, *Player) {
	for i, player := range t.seats {
		if player != nil && player.UUID == uuid {
			return i, player
		}
	}
	return NoSeat, nil
}
