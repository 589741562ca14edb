package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seatWithInvestment(name string, invested float64, folded bool, score []int32) *Player {
	p := NewPlayer(name, name, 0)
	p.Folded = folded
	p.TotalInvestment = invested
	p.HandScore = score
	return p
}

func TestPayoutSingleLiveSeat(t *testing.T) {
	// Everyone else folded after investing; the last seat standing takes
	// every chip on the table without a showdown.
	invested := []float64{40, 15, 20, 30, 15, 10}
	seats := make([]*Player, len(invested))
	for i, inv := range invested {
		seats[i] = seatWithInvestment("p"+string(rune('0'+i)), inv, i != 0, nil)
	}

	pot := NewPot()
	carry := pot.Payout(seats, []*Player{seats[0]}, 0)

	assert.Equal(t, 0.0, carry)
	assert.Equal(t, 130.0, seats[0].ChipsWon)
	assert.Equal(t, []float64{130.0}, pot.SidePotTotals)
}

func TestPayoutTwoLiveSeats(t *testing.T) {
	// Seat 3 went all in for 30 and has the stronger hand; seat 0
	// covered everyone with 40. Seat 3 takes the main pot, seat 0 gets
	// the uncontested side pot back.
	invested := []float64{40, 15, 20, 30, 15, 10}
	strong := []int32{8, 10}
	weak := []int32{3, 12, 9, 5}
	seats := []*Player{
		seatWithInvestment("p0", invested[0], false, weak),
		seatWithInvestment("p1", invested[1], true, nil),
		seatWithInvestment("p2", invested[2], true, nil),
		seatWithInvestment("p3", invested[3], false, strong),
		seatWithInvestment("p4", invested[4], true, nil),
		seatWithInvestment("p5", invested[5], true, nil),
	}
	ranking := []*Player{seats[3], seats[0]}

	pot := NewPot()
	carry := pot.Payout(seats, ranking, 0)

	assert.Equal(t, 0.0, carry)
	assert.Equal(t, []float64{30, 40}, pot.SidePots)
	assert.Equal(t, []float64{120, 10}, pot.SidePotTotals)
	assert.Equal(t, 120.0, seats[3].ChipsWon)
	assert.Equal(t, 10.0, seats[0].ChipsWon)
}

func TestPayoutThreeWayTie(t *testing.T) {
	// Seats 0, 3 and 4 reach showdown with identical scores. The lowest
	// tier splits three ways with the odd cent going to the first seat
	// in rotation order, seat 3.
	invested := []float64{40, 15, 20, 30, 15, 10}
	tied := []int32{2, 14, 13, 9, 5, 3}
	seats := []*Player{
		seatWithInvestment("p0", invested[0], false, tied),
		seatWithInvestment("p1", invested[1], true, nil),
		seatWithInvestment("p2", invested[2], true, nil),
		seatWithInvestment("p3", invested[3], false, tied),
		seatWithInvestment("p4", invested[4], false, tied),
		seatWithInvestment("p5", invested[5], true, nil),
	}
	// Rotation order from the seat after dealer 0.
	ranking := []*Player{seats[3], seats[4], seats[0]}

	pot := NewPot()
	carry := pot.Payout(seats, ranking, 0)

	assert.Equal(t, 0.0, carry)
	assert.Equal(t, []float64{15, 30, 40}, pot.SidePots)
	assert.Equal(t, []float64{85, 35, 10}, pot.SidePotTotals)

	assert.InDelta(t, 55.83, seats[0].ChipsWon, 0.0001)
	assert.InDelta(t, 45.84, seats[3].ChipsWon, 0.0001)
	assert.InDelta(t, 28.33, seats[4].ChipsWon, 0.0001)

	total := seats[0].ChipsWon + seats[3].ChipsWon + seats[4].ChipsWon
	assert.InDelta(t, 130.0, total, 0.0001)
}

func TestPayoutCarryRidesLowestTier(t *testing.T) {
	// A carried remainder below one cent stays dust; once it adds up to
	// a whole cent it enters the distribution.
	tied := []int32{1, 14, 12, 9, 7}
	seats := []*Player{
		seatWithInvestment("a", 10, false, tied),
		seatWithInvestment("b", 10, false, tied),
	}
	pot := NewPot()
	carry := pot.Payout(seats, []*Player{seats[0], seats[1]}, 0.004)

	// 20.004 pays out 20.00, the dust carries on.
	assert.InDelta(t, 0.004, carry, 0.0000001)
	assert.InDelta(t, 10.0, seats[0].ChipsWon, 0.0001)
	assert.InDelta(t, 10.0, seats[1].ChipsWon, 0.0001)

	seats[0].ChipsWon = 0
	seats[1].ChipsWon = 0
	pot = NewPot()
	carry = pot.Payout(seats, []*Player{seats[0], seats[1]}, 0.016)

	// 20.016 pays out 20.01: 10.00 each plus the formed cent to the
	// first winner in rotation order.
	assert.InDelta(t, 0.006, carry, 0.0000001)
	assert.InDelta(t, 10.01, seats[0].ChipsWon, 0.0001)
	assert.InDelta(t, 10.0, seats[1].ChipsWon, 0.0001)
}

func TestDistributePotOddCentRotation(t *testing.T) {
	tied := []int32{2, 9, 9, 7, 5, 3}
	winners := []*Player{
		seatWithInvestment("a", 0, false, tied),
		seatWithInvestment("b", 0, false, tied),
		seatWithInvestment("c", 0, false, tied),
	}

	dust := distributePot(85, winners)

	require.InDelta(t, 0.0, dust, 0.0000001)
	assert.InDelta(t, 28.34, winners[0].ChipsWon, 0.0001)
	assert.InDelta(t, 28.33, winners[1].ChipsWon, 0.0001)
	assert.InDelta(t, 28.33, winners[2].ChipsWon, 0.0001)
}

func TestCountWinnersStopsAtFirstWeakerScore(t *testing.T) {
	tied := []int32{6, 9}
	weaker := []int32{5, 14, 13}
	participants := []*Player{
		seatWithInvestment("a", 0, false, tied),
		seatWithInvestment("b", 0, false, tied),
		seatWithInvestment("c", 0, false, weaker),
	}
	assert.Equal(t, 2, countWinners(participants))
}

func TestFillSidePotsIncludesFoldedInvestments(t *testing.T) {
	seats := []*Player{
		seatWithInvestment("live", 50, false, nil),
		seatWithInvestment("folded", 20, true, nil),
		nil,
		seatWithInvestment("short", 10, false, nil),
	}
	pot := NewPot()
	pot.AddSidePot(10)
	pot.AddSidePot(50)
	pot.fillSidePots(seats)

	// Tier 10 collects from all three investors; tier 50 from the two
	// that invested past 10.
	assert.Equal(t, []float64{30, 50}, pot.SidePotTotals)
}

func TestAddSidePotDeduplicatesAndSorts(t *testing.T) {
	pot := NewPot()
	pot.AddSidePot(30)
	pot.AddSidePot(10)
	pot.AddSidePot(30)
	pot.AddSidePot(20)
	assert.Equal(t, []float64{10, 20, 30}, pot.SidePots)
}
