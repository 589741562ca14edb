package game

import (
	"sort"

	"github.com/ClericalAid/poker-server/poker"
	"github.com/ClericalAid/poker-server/util"
)

// Pot computes side-pot tiers and chip distribution at hand end. This is
// the only place side-pot math lives; the betting state machine defers
// all chip movement here.
//
// A side pot's threshold is the total investment that caps it, not the
// chips it holds. Player A all in for 50, player B all in for 100 and
// player C calling 100 yields thresholds [50, 100] holding 150 and 100.
type Pot struct {
	SidePots            []float64
	SidePotTotals       []float64
	SidePotParticipants [][]*Player
}

func NewPot() *Pot {
	return &Pot{}
}

// AddSidePot inserts a threshold, keeping the list ascending and unique.
func (pot *Pot) AddSidePot(potSize float64) {
	for _, existing := range pot.SidePots {
		if util.NearlyEqual(existing, potSize) {
			return
		}
	}
	pot.SidePots = append(pot.SidePots, potSize)
	sort.Float64s(pot.SidePots)
}

// fillSidePots walks every seat's investment into the tiers. Folded
// seats still contribute the chips they invested; a seat stops
// contributing once its investment is exhausted. This guarantees the sum
// of the side-pot totals equals the sum of all investments.
func (pot *Pot) fillSidePots(seats []*Player) {
	pot.SidePotTotals = make([]float64, len(pot.SidePots))

	for _, actor := range seats {
		if actor == nil {
			continue
		}
		prevSidePot := 0.0
		investment := actor.TotalInvestment

		for i, sidePotAmount := range pot.SidePots {
			costOfSidePot := util.RoundDecimal(sidePotAmount-prevSidePot, 2)
			if util.Greater(investment, costOfSidePot) {
				investment = util.RoundDecimal(investment-costOfSidePot, 2)
				pot.SidePotTotals[i] = util.RoundDecimal(pot.SidePotTotals[i]+costOfSidePot, 2)
				prevSidePot = sidePotAmount
			} else {
				pot.SidePotTotals[i] = util.RoundDecimal(pot.SidePotTotals[i]+investment, 2)
				break
			}
		}
	}
}

// evaluateSidePots places each ranked seat into every tier it is
// eligible for: non-folded seats whose investment covers the threshold.
// The ranking is already ordered strongest to weakest, so each tier's
// participants are too.
func (pot *Pot) evaluateSidePots(ranking []*Player) {
	pot.SidePotParticipants = make([][]*Player, len(pot.SidePots))
	for i := range pot.SidePotParticipants {
		pot.SidePotParticipants[i] = make([]*Player, 0, len(ranking))
	}

	for _, actor := range ranking {
		for i, sidePot := range pot.SidePots {
			if util.GreaterOrNearlyEqual(actor.TotalInvestment, sidePot) {
				pot.SidePotParticipants[i] = append(pot.SidePotParticipants[i], actor)
			}
		}
	}
}

// countWinners is the run length of seats tied with the strongest score
// at the head of a tier's participant list.
func countWinners(participants []*Player) int {
	i := 1
	for ; i < len(participants); i++ {
		if !scoresTied(participants[i], participants[0]) {
			break
		}
	}
	return i
}

func scoresTied(a *Player, b *Player) bool {
	return poker.ScoresTied(a.HandScore, b.HandScore)
}

// distributePot splits one tier among its tied winners: integer cents
// per winner, with the truncation remainder handed out one cent at a
// time across the winners in order. Returns the sub-cent dust that could
// not be distributed.
func distributePot(potAmount float64, sortedParticipants []*Player) float64 {
	// Split off anything below a cent before distributing; it carries to
	// the next hand rather than vanishing in rounding.
	wholeCents := util.FloorDecimal(potAmount, 2)
	dust := util.RoundDecimal(potAmount-wholeCents, 4)
	potAmount = wholeCents

	winnerCount := countWinners(sortedParticipants)
	shares := make([]float64, winnerCount)
	util.SplitCents(potAmount, winnerCount, shares)
	for i, share := range shares {
		sortedParticipants[i].WinChips(share)
	}

	return dust
}

// Payout settles the hand. seats is the full seat array (folded seats
// included, they still fund the pots); ranking is the non-folded seats
// ordered strongest hand first, with ties kept in rotation order
// starting from the seat after the dealer, which fixes the deterministic
// remainder rotation. carry is the fractional remainder left over from
// the previous hand.
//
// Returns the new carry: any sub-cent dust that could not be paid out.
func (pot *Pot) Payout(seats []*Player, ranking []*Player, carry float64) float64 {
	if len(ranking) == 0 {
		return carry
	}

	// A premature win: the last seat standing takes everything,
	// regardless of how deep anyone else's investment went.
	if len(ranking) == 1 {
		total := carry
		for _, actor := range seats {
			if actor != nil {
				total += actor.TotalInvestment
			}
		}
		payout := util.FloorDecimal(total, 2)
		winner := ranking[0]
		winner.WinChips(payout)
		pot.SidePots = []float64{winner.TotalInvestment}
		pot.SidePotTotals = []float64{payout}
		pot.SidePotParticipants = [][]*Player{{winner}}
		return util.RoundDecimal(total-payout, 4)
	}

	for _, actor := range ranking {
		pot.AddSidePot(actor.TotalInvestment)
	}
	pot.fillSidePots(seats)
	pot.evaluateSidePots(ranking)

	// Prior-hand dust rides on the lowest tier, unrounded so it can
	// accumulate into a whole cent over hands.
	pot.SidePotTotals[0] = pot.SidePotTotals[0] + carry

	remainder := 0.0
	for i := range pot.SidePots {
		remainder += distributePot(pot.SidePotTotals[i], pot.SidePotParticipants[i])
	}
	return remainder
}
