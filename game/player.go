package game

import (
	"github.com/rs/zerolog/log"

	"github.com/ClericalAid/poker-server/poker"
	"github.com/ClericalAid/poker-server/util"
)

var playerLogger = log.With().Str("logger_name", "game::player").Logger()

// ActionSet is the set of legal moves for one seat at one decision
// point, along with the amounts that bound them. It is computed by
// LegalActions and never mutated in place.
type ActionSet struct {
	CanCall   bool
	CanCallIn bool
	CanRaise  bool
	CanAllIn  bool
	CanFold   bool

	// AmountToCall is the chips this seat must add to match the total call.
	AmountToCall float64
	// MinRaiseTotal is the fewest chips the seat may put in for a raise.
	MinRaiseTotal float64
	// MaxRaise is the most chips the seat may put in (its whole stack).
	MaxRaise float64
}

// Player is a seated player. The seat owns the player's private cards
// and hand ranker; both are reset at the start of every hand.
type Player struct {
	Name string
	UUID string

	Stack     float64
	Hand      []poker.Card
	Ranker    *poker.HandRanker
	HandScore []int32

	Folded       bool
	IsAllIn      bool
	Disconnected bool

	TotalInvestment float64
	ChipsWon        float64
	LastBetSize     float64

	// acted records whether the seat has voluntarily acted this hand.
	// Blinds are forced bets and do not count; the flag backs the
	// blind-option rule.
	acted bool

	actions ActionSet
}

func NewPlayer(name string, uuid string, buyIn float64) *Player {
	return &Player{
		Name:   name,
		UUID:   uuid,
		Stack:  buyIn,
		Hand:   make([]poker.Card, 0, 2),
		Ranker: poker.NewHandRanker(),
		// a seat joining mid-hand is not part of the action
		Folded: true,
	}
}

// NewHand resets the seat for the next hand.
func (p *Player) NewHand() {
	p.Hand = p.Hand[:0]
	p.Ranker.Reset()
	p.HandScore = nil

	p.Folded = false
	p.IsAllIn = false
	p.acted = false

	p.TotalInvestment = 0
	p.ChipsWon = 0
	p.LastBetSize = 0
	p.DisableMoves()
}

// DrawCard pops a card from the deck into the seat's private hand.
func (p *Player) DrawCard(deck *poker.Deck) error {
	card, err := deck.Pop()
	if err != nil {
		return err
	}
	p.Hand = append(p.Hand, card)
	p.Ranker.AddCard(card)
	return nil
}

// NewSharedCard feeds a newly revealed shared card to the seat's ranker.
func (p *Player) NewSharedCard(card poker.Card) {
	p.Ranker.AddCard(card)
}

// WinChips credits won chips onto the stack.
func (p *Player) WinChips(amount float64) {
	p.Stack = util.RoundDecimal(p.Stack+amount, 2)
	p.ChipsWon = util.RoundDecimal(p.ChipsWon+amount, 2)
}

// PlaceBlind forces the blind bet. A stack shorter than the blind goes
// all in for what it has.
func (p *Player) PlaceBlind(amount float64) float64 {
	if util.GreaterOrNearlyEqual(amount, p.Stack) {
		amount = p.Stack
		p.Stack = 0
		p.IsAllIn = true
	} else {
		p.Stack = util.RoundDecimal(p.Stack-amount, 2)
	}
	p.TotalInvestment = util.RoundDecimal(p.TotalInvestment+amount, 2)
	return amount
}

func (p *Player) placeBet(amount float64) {
	p.LastBetSize = amount
	p.TotalInvestment = util.RoundDecimal(p.TotalInvestment+amount, 2)
	p.Stack = util.RoundDecimal(p.Stack-amount, 2)
	if util.NearlyEqual(p.Stack, 0) {
		p.Stack = 0
		p.IsAllIn = true
	}
}

// DisableMoves clears the legal-action set. Used between decision
// points and once the hand is done, so a stale client command cannot
// mutate the game.
func (p *Player) DisableMoves() {
	p.actions = ActionSet{}
}

// SetActions installs the legal-action set for the seat's turn.
func (p *Player) SetActions(actions ActionSet) {
	p.actions = actions
}

// Actions returns the seat's current legal-action set.
func (p *Player) Actions() ActionSet {
	return p.actions
}

// LegalActions computes the legal moves for a seat facing totalCall with
// the given minimum raise. It is a pure function of its inputs.
//
// The three stack cases:
//  1. stack <= amountToCall: the seat can only call all-in or fold.
//  2. stack <= amountToCall + minRaise: call, call-in, fold.
//  3. otherwise: call, raise, all-in, fold, with maxRaise = stack.
//
// Folding is illegal when there is nothing to fold to. When the amount
// to call is smaller than the minimum raise a short all-in occurred and
// the seat may only flat call or fold — unless the seat is a blind with
// its untaken option, which may still raise.
func LegalActions(p *Player, totalCall float64, minRaise float64, blindException bool) ActionSet {
	actions := ActionSet{
		AmountToCall:  util.RoundDecimal(totalCall-p.TotalInvestment, 2),
		MinRaiseTotal: util.RoundDecimal(totalCall-p.TotalInvestment+minRaise, 2),
	}

	if util.GreaterOrNearlyEqual(actions.AmountToCall, p.Stack) {
		actions.CanCallIn = true
		actions.CanFold = true
	} else if util.GreaterOrNearlyEqual(actions.MinRaiseTotal, p.Stack) {
		actions.CanCall = true
		actions.CanCallIn = true
		actions.CanFold = true
	} else {
		actions.CanCall = true
		actions.CanAllIn = true
		actions.CanFold = true
		actions.CanRaise = true
		actions.MaxRaise = p.Stack
	}

	if util.NearlyEqual(actions.AmountToCall, 0) {
		actions.CanFold = false
	} else if util.Greater(minRaise, actions.AmountToCall) && !blindException {
		actions.CanAllIn = false
		actions.CanRaise = false
		if actions.CanCall {
			actions.CanCallIn = false
		}
	}

	return actions
}

// Call matches the amount to call. With nothing to call this is a check.
func (p *Player) Call() (float64, error) {
	if !p.actions.CanCall {
		return 0, InvalidActionError{Action: "call", Msg: "call is not a legal action"}
	}
	amount := p.actions.AmountToCall
	p.placeBet(amount)
	p.acted = true
	return amount, nil
}

// Raise puts amount chips in. The amount covers the call plus the raise
// and must lie within [minRaiseTotal, maxRaise].
func (p *Player) Raise(amount float64) (float64, error) {
	if !p.actions.CanRaise {
		return 0, InvalidActionError{Action: "raise", Msg: "raise is not a legal action"}
	}
	if util.Greater(amount, p.actions.MaxRaise) || util.Greater(p.actions.MinRaiseTotal, amount) {
		return 0, InvalidActionError{Action: "raise",
			Msg: "amount is outside the legal raise range"}
	}
	p.placeBet(amount)
	p.acted = true
	return amount, nil
}

// AllIn bets the seat's entire stack.
func (p *Player) AllIn() (float64, error) {
	if !p.actions.CanCallIn && !p.actions.CanAllIn {
		return 0, InvalidActionError{Action: "all-in", Msg: "all-in is not a legal action"}
	}
	amount := p.Stack
	p.placeBet(amount)
	p.IsAllIn = true
	p.acted = true
	return amount, nil
}

// Fold gives up the hand.
func (p *Player) Fold() error {
	if !p.actions.CanFold {
		return InvalidActionError{Action: "fold", Msg: "fold is not a legal action"}
	}
	p.Folded = true
	p.acted = true
	return nil
}

// Disconnect marks the seat as disconnected. The seat is swept from the
// table once the current hand is over; until then it is treated as a
// forced fold or check.
func (p *Player) Disconnect() {
	playerLogger.Info().Str("playerName", p.Name).Msg("Player disconnected")
	p.Disconnected = true
}
