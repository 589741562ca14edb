package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegalActionsShortStackCanOnlyCallInOrFold(t *testing.T) {
	p := NewPlayer("shorty", "u-shorty", 5)
	p.Folded = false

	actions := LegalActions(p, 10, 2, false)

	assert.False(t, actions.CanCall)
	assert.True(t, actions.CanCallIn)
	assert.False(t, actions.CanRaise)
	assert.False(t, actions.CanAllIn)
	assert.True(t, actions.CanFold)
	assert.Equal(t, 10.0, actions.AmountToCall)
}

func TestLegalActionsStackCoversCallButNotRaise(t *testing.T) {
	p := NewPlayer("mid", "u-mid", 11)
	p.Folded = false

	actions := LegalActions(p, 10, 2, false)

	assert.True(t, actions.CanCall)
	assert.True(t, actions.CanCallIn)
	assert.False(t, actions.CanRaise)
	assert.False(t, actions.CanAllIn)
	assert.True(t, actions.CanFold)
	assert.Equal(t, 12.0, actions.MinRaiseTotal)
}

func TestLegalActionsFullStack(t *testing.T) {
	p := NewPlayer("deep", "u-deep", 100)
	p.Folded = false
	p.TotalInvestment = 2

	actions := LegalActions(p, 10, 4, false)

	assert.True(t, actions.CanCall)
	assert.True(t, actions.CanRaise)
	assert.True(t, actions.CanAllIn)
	assert.True(t, actions.CanFold)
	assert.Equal(t, 8.0, actions.AmountToCall)
	assert.Equal(t, 12.0, actions.MinRaiseTotal)
	assert.Equal(t, 100.0, actions.MaxRaise)
}

func TestLegalActionsNothingToCallCannotFold(t *testing.T) {
	p := NewPlayer("even", "u-even", 100)
	p.Folded = false
	p.TotalInvestment = 10

	actions := LegalActions(p, 10, 2, false)

	assert.False(t, actions.CanFold)
	assert.True(t, actions.CanCall)
	assert.Equal(t, 0.0, actions.AmountToCall)
}

func TestLegalActionsShortAllInLocksOutRaising(t *testing.T) {
	// A previous all-in raised the total call by less than the minimum
	// raise. The seats that already acted may only flat call or fold.
	p := NewPlayer("locked", "u-locked", 100)
	p.Folded = false
	p.TotalInvestment = 10

	actions := LegalActions(p, 13, 4, false)

	assert.True(t, actions.CanCall)
	assert.False(t, actions.CanRaise)
	assert.False(t, actions.CanAllIn)
	assert.False(t, actions.CanCallIn)
	assert.True(t, actions.CanFold)
}

func TestLegalActionsBlindExceptionKeepsRaiseOpen(t *testing.T) {
	p := NewPlayer("bigblind", "u-bb", 100)
	p.Folded = false
	p.TotalInvestment = 10

	actions := LegalActions(p, 13, 4, true)

	assert.True(t, actions.CanCall)
	assert.True(t, actions.CanRaise)
	assert.True(t, actions.CanAllIn)
}

func TestPlaceBlindShortStackGoesAllIn(t *testing.T) {
	p := NewPlayer("tiny", "u-tiny", 1.5)
	p.Folded = false

	posted := p.PlaceBlind(2)

	assert.Equal(t, 1.5, posted)
	assert.Equal(t, 0.0, p.Stack)
	assert.True(t, p.IsAllIn)
	assert.Equal(t, 1.5, p.TotalInvestment)
}

func TestCallPlacesAmountToCall(t *testing.T) {
	p := NewPlayer("caller", "u-caller", 100)
	p.Folded = false
	p.SetActions(LegalActions(p, 10, 2, false))

	amount, err := p.Call()
	require.NoError(t, err)

	assert.Equal(t, 10.0, amount)
	assert.Equal(t, 90.0, p.Stack)
	assert.Equal(t, 10.0, p.TotalInvestment)
}

func TestRaiseOutsideRangeRejected(t *testing.T) {
	p := NewPlayer("raiser", "u-raiser", 100)
	p.Folded = false
	p.SetActions(LegalActions(p, 10, 4, false))

	_, err := p.Raise(12)
	require.Error(t, err)
	assert.Equal(t, 100.0, p.Stack)

	_, err = p.Raise(101)
	require.Error(t, err)

	amount, err := p.Raise(14)
	require.NoError(t, err)
	assert.Equal(t, 14.0, amount)
	assert.Equal(t, 86.0, p.Stack)
}

func TestAllInEmptiesStack(t *testing.T) {
	p := NewPlayer("pusher", "u-pusher", 50)
	p.Folded = false
	p.SetActions(LegalActions(p, 10, 2, false))

	amount, err := p.AllIn()
	require.NoError(t, err)

	assert.Equal(t, 50.0, amount)
	assert.Equal(t, 0.0, p.Stack)
	assert.True(t, p.IsAllIn)
}

func TestActionWithoutPermissionRejected(t *testing.T) {
	p := NewPlayer("idle", "u-idle", 100)
	p.Folded = false
	p.DisableMoves()

	_, err := p.Call()
	assert.Error(t, err)
	_, err = p.Raise(10)
	assert.Error(t, err)
	_, err = p.AllIn()
	assert.Error(t, err)
	err = p.Fold()
	assert.Error(t, err)
	assert.False(t, p.Folded)
}

func TestNewHandResetsSeat(t *testing.T) {
	p := NewPlayer("reset", "u-reset", 100)
	p.Folded = false
	p.SetActions(LegalActions(p, 10, 2, false))
	_, err := p.Call()
	require.NoError(t, err)
	p.IsAllIn = true
	p.ChipsWon = 3

	p.NewHand()

	assert.False(t, p.Folded)
	assert.False(t, p.IsAllIn)
	assert.False(t, p.acted)
	assert.Equal(t, 0.0, p.TotalInvestment)
	assert.Equal(t, 0.0, p.ChipsWon)
	assert.Empty(t, p.Hand)
	assert.Equal(t, ActionSet{}, p.Actions())
}

func TestWinChipsCreditsStack(t *testing.T) {
	p := NewPlayer("winner", "u-winner", 10)
	p.WinChips(5.25)
	assert.Equal(t, 15.25, p.Stack)
	assert.Equal(t, 5.25, p.ChipsWon)
}
