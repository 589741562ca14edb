package game

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/ClericalAid/poker-server/poker"
)

var resultJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// HandResult is an immutable record of a finished hand, the unit that
// gets persisted and broadcast.
type HandResult struct {
	GameCode string       `json:"gameCode"`
	HandNum  uint32       `json:"handNum"`
	Board    []string     `json:"board"`
	Showdown bool         `json:"showdown"`
	Pots     []PotResult  `json:"pots"`
	Seats    []SeatResult `json:"seats"`
	Carry    float64      `json:"carry"`
}

type PotResult struct {
	Amount      float64  `json:"amount"`
	WinnerSeats []int    `json:"winnerSeats"`
	WinnerNames []string `json:"winnerNames"`
}

type SeatResult struct {
	SeatNo    int      `json:"seatNo"`
	Name      string   `json:"name"`
	HoleCards []string `json:"holeCards,omitempty"`
	Folded    bool     `json:"folded"`
	Invested  float64  `json:"invested"`
	Won       float64  `json:"won"`
	Stack     float64  `json:"stack"`
}

func (r *HandResult) ToJSON() ([]byte, error) {
	return resultJSON.Marshal(r)
}

func HandResultFromJSON(data []byte) (*HandResult, error) {
	var result HandResult
	if err := resultJSON.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// buildResult snapshots the table the moment settlement finishes. Hole
// cards are revealed only for seats that reached showdown without
// folding.
func (h *HandState) buildResult(pot *Pot, showdown bool) *HandResult {
	seatOf := make(map[*Player]int, h.table.PlayerCount())
	for seatNo, player := range h.table.Seats() {
		if player != nil {
			seatOf[player] = seatNo
		}
	}

	result := &HandResult{
		HandNum:  h.handNum,
		Board:    make([]string, 0, len(h.sharedCards)),
		Showdown: showdown,
		Pots:     make([]PotResult, 0, len(pot.SidePots)),
		Seats:    make([]SeatResult, 0, h.table.PlayerCount()),
		Carry:    h.carry,
	}
	for _, card := range h.sharedCards {
		result.Board = append(result.Board, card.String())
	}

	for i := range pot.SidePots {
		winners := pot.SidePotParticipants[i]
		winnerCount := countWinners(winners)
		potResult := PotResult{Amount: pot.SidePotTotals[i]}
		for _, winner := range winners[:winnerCount] {
			potResult.WinnerSeats = append(potResult.WinnerSeats, seatOf[winner])
			potResult.WinnerNames = append(potResult.WinnerNames, winner.Name)
		}
		result.Pots = append(result.Pots, potResult)
	}

	for seatNo, player := range h.table.Seats() {
		if player == nil {
			continue
		}
		seat := SeatResult{
			SeatNo:   seatNo,
			Name:     player.Name,
			Folded:   player.Folded,
			Invested: player.TotalInvestment,
			Won:      player.ChipsWon,
			Stack:    player.Stack,
		}
		if showdown && !player.Folded {
			seat.HoleCards = []string{player.Hand[0].String(), player.Hand[1].String()}
		}
		result.Seats = append(result.Seats, seat)
	}
	return result
}

// TableSnapshot is the public view of a game in progress, safe to send
// to every client: hole cards are omitted.
type TableSnapshot struct {
	GameCode    string         `json:"gameCode"`
	HandNum     uint32         `json:"handNum"`
	Status      string         `json:"status"`
	Board       []string       `json:"board"`
	Pot         float64        `json:"pot"`
	SidePots    []float64      `json:"sidePots"`
	TotalCall   float64        `json:"totalCall"`
	MinRaise    float64        `json:"minRaise"`
	DealerSeat  int            `json:"dealerSeat"`
	ActorSeat   int            `json:"actorSeat"`
	ActorMoves  *ActionSet     `json:"actorMoves,omitempty"`
	Seats       []SeatSnapshot `json:"seats"`
	PlayerCount int            `json:"playerCount"`
	TableSize   int            `json:"tableSize"`
}

type SeatSnapshot struct {
	SeatNo       int     `json:"seatNo"`
	Name         string  `json:"name"`
	Stack        float64 `json:"stack"`
	Invested     float64 `json:"invested"`
	Folded       bool    `json:"folded"`
	AllIn        bool    `json:"allIn"`
	Disconnected bool    `json:"disconnected"`
}

func (s *TableSnapshot) ToJSON() ([]byte, error) {
	return resultJSON.Marshal(s)
}

// DebugDump renders the hand for log output while scripting through
// hands locally.
func (h *HandState) DebugDump() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "hand %d [%s] pot %.2f call %.2f minRaise %.2f\n",
		h.handNum, h.status, h.pot, h.totalCall, h.minRaise)
	fmt.Fprintf(&sb, "board: %s\n", poker.CardsToString(h.sharedCards))
	for seatNo, player := range h.table.Seats() {
		if player == nil {
			continue
		}
		marker := " "
		if seatNo == h.dealer {
			marker = "D"
		}
		state := ""
		if player.Folded {
			state = " folded"
		} else if player.IsAllIn {
			state = " all-in"
		}
		fmt.Fprintf(&sb, "%s seat %d %-12s stack %.2f in %.2f%s\n",
			marker, seatNo, player.Name, player.Stack, player.TotalInvestment, state)
	}
	return sb.String()
}
