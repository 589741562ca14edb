package game

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/ClericalAid/poker-server/poker"
	"github.com/ClericalAid/poker-server/util"
)

var handLogger = log.With().Str("logger_name", "game::hand").Logger()

type HandStatus int32

const (
	HandStatus_PREFLOP HandStatus = iota
	HandStatus_FLOP
	HandStatus_TURN
	HandStatus_RIVER
	HandStatus_SHOWDOWN
	HandStatus_HAND_DONE
)

var handStatusName = map[HandStatus]string{
	HandStatus_PREFLOP:   "PREFLOP",
	HandStatus_FLOP:      "FLOP",
	HandStatus_TURN:      "TURN",
	HandStatus_RIVER:     "RIVER",
	HandStatus_SHOWDOWN:  "SHOWDOWN",
	HandStatus_HAND_DONE: "HAND_DONE",
}

func (s HandStatus) String() string {
	return handStatusName[s]
}

const headsUp = 2

// HandState owns one hand's lifecycle: blind posting, actor rotation,
// legal-action computation, street transitions and premature-win
// detection. All mutation happens in response to one external call at a
// time; the shuffle before dealing is the only suspension point.
type HandState struct {
	table *Table
	deck  *poker.Deck

	handNum          uint32
	smallBlindAmount float64
	bigBlindAmount   float64

	dealer         int
	smallBlindSeat int
	bigBlindSeat   int
	actor          int
	lastRaiser     int

	totalCall float64
	minRaise  float64

	sharedCards []poker.Card
	// sidePots holds the all-in thresholds registered during betting.
	// Settlement recomputes its own tiers from final investments; this
	// list exists for rendering.
	sidePots []float64

	// pot carries the chips bet so far plus any fractional remainder
	// carried over from the previous hand's settlement.
	pot   float64
	carry float64

	status     HandStatus
	handDone   bool
	settledPot *Pot
	result     *HandResult
}

func newHandState(table *Table, deck *poker.Deck, smallBlind float64, bigBlind float64,
	dealer int, carry float64, handNum uint32) *HandState {
	return &HandState{
		table:            table,
		deck:             deck,
		handNum:          handNum,
		smallBlindAmount: smallBlind,
		bigBlindAmount:   bigBlind,
		dealer:           dealer,
		smallBlindSeat:   NoSeat,
		bigBlindSeat:     NoSeat,
		actor:            NoSeat,
		lastRaiser:       NoSeat,
		sharedCards:      make([]poker.Card, 0, 5),
		pot:              carry,
		carry:            carry,
		status:           HandStatus_PREFLOP,
	}
}

// begin posts the blinds, deals every seat two cards and computes the
// first actor's legal moves. The deck must already be shuffled.
func (h *HandState) begin() error {
	h.postBlinds()
	if err := h.dealHoleCards(); err != nil {
		h.abortHand(err)
		return err
	}
	// A blind can be all in from the forced post alone; the action
	// starts at the first seat that can actually move.
	if h.currentActor().IsAllIn {
		next := h.scanNextActor()
		if next == NoSeat {
			h.nextRound()
			return nil
		}
		h.actor = next
	}
	h.computeValidMoves()
	return nil
}

// postBlinds forces the blinds into the pot. In a game with more than
// two players the small blind sits after the dealer; heads up the
// dealer is the small blind. The first player to act is always the seat
// after the big blind.
//
// A player going all in on a blind does not change what others must
// call: the minimum call and the minimum raise both stay at the big
// blind amount, per Robert's Rules.
func (h *HandState) postBlinds() {
	if h.table.PlayerCount() != headsUp {
		h.smallBlindSeat = h.table.NextOccupied(h.dealer)
	} else {
		h.smallBlindSeat = h.dealer
	}
	h.bigBlindSeat = h.table.NextOccupied(h.smallBlindSeat)

	h.minRaise = h.bigBlindAmount
	h.updateTotalCall(h.bigBlindAmount)

	h.pot = util.RoundDecimal(h.pot+h.table.Seat(h.smallBlindSeat).PlaceBlind(h.smallBlindAmount), 2)
	h.pot = util.RoundDecimal(h.pot+h.table.Seat(h.bigBlindSeat).PlaceBlind(h.bigBlindAmount), 2)

	h.actor = h.table.NextOccupied(h.bigBlindSeat)
}

// dealHoleCards deals two full passes around the table, one card per
// pass.
func (h *HandState) dealHoleCards() error {
	for pass := 0; pass < 2; pass++ {
		for _, player := range h.table.Seats() {
			if player == nil {
				continue
			}
			if err := player.DrawCard(h.deck); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *HandState) currentActor() *Player {
	return h.table.Seat(h.actor)
}

func (h *HandState) updateTotalCall(newValue float64) {
	if util.Greater(newValue, h.totalCall) {
		h.totalCall = newValue
	}
}

// blindOption reports whether the seat is a blind that has posted its
// forced bet but has not yet acted voluntarily. Such a seat keeps its
// option to raise even when it appears to be facing a re-raise of
// itself.
func (h *HandState) blindOption(seatNo int) bool {
	if h.status != HandStatus_PREFLOP || seatNo == NoSeat {
		return false
	}
	player := h.table.Seat(seatNo)
	if player == nil || player.acted {
		return false
	}
	if seatNo == h.smallBlindSeat && util.NearlyEqual(player.TotalInvestment, h.smallBlindAmount) {
		return true
	}
	if seatNo == h.bigBlindSeat && util.NearlyEqual(player.TotalInvestment, h.bigBlindAmount) {
		return true
	}
	return false
}

// computeValidMoves installs the legal-action set for the current actor.
func (h *HandState) computeValidMoves() {
	actor := h.currentActor()
	actor.SetActions(LegalActions(actor, h.totalCall, h.minRaise, h.blindOption(h.actor)))
}

// Call matches the current total call; with nothing to call it is a
// check. Calling with no aggressor on the board makes the caller the
// seat the action must return to.
func (h *HandState) Call() error {
	actor := h.currentActor()
	amount, err := actor.Call()
	if err != nil {
		return err
	}
	h.pot = util.RoundDecimal(h.pot+amount, 2)
	if h.lastRaiser == NoSeat {
		h.lastRaiser = h.actor
	}
	h.advanceActor()
	return nil
}

// Raise puts in amount chips (the call plus the raise). The raiser
// becomes the aggressor and the minimum raise becomes the size of this
// raise over the previous call.
func (h *HandState) Raise(amount float64) error {
	actor := h.currentActor()
	added, err := actor.Raise(amount)
	if err != nil {
		return err
	}
	h.pot = util.RoundDecimal(h.pot+added, 2)
	h.minRaise = util.RoundDecimal(actor.TotalInvestment-h.totalCall, 2)
	h.lastRaiser = h.actor
	h.updateTotalCall(actor.TotalInvestment)
	h.advanceActor()
	return nil
}

// AllIn bets the actor's whole stack and registers a side pot at the
// actor's total investment. A full all-in raise resets the minimum
// raise; a call-in does not, but either way an amount above the previous
// total call re-opens the action.
func (h *HandState) AllIn() error {
	actor := h.currentActor()
	actions := actor.Actions()
	added, err := actor.AllIn()
	if err != nil {
		return err
	}
	if actions.CanAllIn {
		h.minRaise = util.RoundDecimal(actor.TotalInvestment-h.totalCall, 2)
	}
	if util.Greater(actor.TotalInvestment, h.totalCall) {
		h.lastRaiser = h.actor
	}
	h.registerSidePot(actor.TotalInvestment)
	h.pot = util.RoundDecimal(h.pot+added, 2)
	h.updateTotalCall(actor.TotalInvestment)
	h.advanceActor()
	return nil
}

// Fold gives up the current actor's hand.
func (h *HandState) Fold() error {
	actor := h.currentActor()
	if err := actor.Fold(); err != nil {
		return err
	}
	h.advanceActor()
	return nil
}

func (h *HandState) registerSidePot(threshold float64) {
	for _, existing := range h.sidePots {
		if util.NearlyEqual(existing, threshold) {
			return
		}
	}
	h.sidePots = append(h.sidePots, threshold)
	sort.Float64s(h.sidePots)
}

// advanceActor moves the action to the next eligible seat. The betting
// round closes the instant zero or one seats remain eligible to
// voluntarily act, regardless of which path detects it.
func (h *HandState) advanceActor() {
	h.currentActor().DisableMoves()

	if h.table.CountLive() <= 1 {
		h.finishHand()
		return
	}

	next := h.scanNextActor()
	if next == NoSeat {
		h.nextRound()
		return
	}
	h.actor = next
	h.computeValidMoves()
}

// scanNextActor cyclically scans forward from the current actor,
// skipping folded and all-in seats. The scan stops at the aggressor —
// everyone has called or folded — unless that seat is a blind with its
// untaken option.
func (h *HandState) scanNextActor() int {
	idx := h.actor
	for i := 0; i <= h.table.PlayerCount(); i++ {
		idx = h.table.NextOccupied(idx)
		if idx == h.lastRaiser && !h.blindOption(idx) {
			return NoSeat
		}
		player := h.table.Seat(idx)
		if player.Folded || player.IsAllIn {
			continue
		}
		return idx
	}
	return NoSeat
}

// nextRound advances to the next street once the betting round is over.
// When all but one of the remaining seats are all in, the board runs
// out mechanically with no further action and the hand goes straight to
// showdown.
func (h *HandState) nextRound() {
	live := h.table.CountLive()
	if live <= 1 {
		h.finishHand()
		return
	}

	allIn := h.table.CountAllIn()
	if live-allIn <= 1 && allIn > 0 {
		if err := h.runOutBoard(); err != nil {
			h.abortHand(err)
			return
		}
		h.showdown()
		return
	}

	var err error
	switch h.status {
	case HandStatus_PREFLOP:
		err = h.dealFlop()
	case HandStatus_FLOP:
		err = h.dealTurn()
	case HandStatus_TURN:
		err = h.dealRiver()
	case HandStatus_RIVER:
		h.showdown()
		return
	}
	if err != nil {
		h.abortHand(err)
		return
	}

	// Betting round reset: action restarts at the seat after the dealer.
	h.minRaise = h.bigBlindAmount
	h.lastRaiser = NoSeat
	h.actor = h.dealer
	next := h.scanNextActor()
	if next == NoSeat {
		h.nextRound()
		return
	}
	h.actor = next
	h.computeValidMoves()
}

func (h *HandState) dealFlop() error {
	if _, err := h.deck.Pop(); err != nil { // burn
		return err
	}
	for i := 0; i < 3; i++ {
		if err := h.addSharedCard(); err != nil {
			return err
		}
	}
	h.status = HandStatus_FLOP
	return nil
}

func (h *HandState) dealTurn() error {
	if _, err := h.deck.Pop(); err != nil { // burn
		return err
	}
	if err := h.addSharedCard(); err != nil {
		return err
	}
	h.status = HandStatus_TURN
	return nil
}

func (h *HandState) dealRiver() error {
	if _, err := h.deck.Pop(); err != nil { // burn
		return err
	}
	if err := h.addSharedCard(); err != nil {
		return err
	}
	h.status = HandStatus_RIVER
	return nil
}

func (h *HandState) runOutBoard() error {
	for h.status < HandStatus_RIVER {
		var err error
		switch h.status {
		case HandStatus_PREFLOP:
			err = h.dealFlop()
		case HandStatus_FLOP:
			err = h.dealTurn()
		case HandStatus_TURN:
			err = h.dealRiver()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// addSharedCard reveals one shared card to every occupied seat.
func (h *HandState) addSharedCard() error {
	card, err := h.deck.Pop()
	if err != nil {
		return err
	}
	h.sharedCards = append(h.sharedCards, card)
	for _, player := range h.table.Seats() {
		if player != nil {
			player.NewSharedCard(card)
		}
	}
	return nil
}

// rotatedLive collects the non-folded seats in rotation order starting
// from the seat after the dealer. The rotation pins down which tied
// winner receives the first remainder cent.
func (h *HandState) rotatedLive() []*Player {
	live := make([]*Player, 0, h.table.PlayerCount())
	idx := h.dealer
	for i := 0; i < h.table.PlayerCount(); i++ {
		idx = h.table.NextOccupied(idx)
		player := h.table.Seat(idx)
		if !player.Folded {
			live = append(live, player)
		}
	}
	return live
}

// showdown scores every non-folded seat's seven cards, ranks them and
// settles the pots.
func (h *HandState) showdown() {
	h.status = HandStatus_SHOWDOWN

	ranking := h.rotatedLive()
	for _, player := range ranking {
		player.HandScore = player.Ranker.ScoreHand()
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return poker.CompareScores(ranking[i].HandScore, ranking[j].HandScore) > 0
	})

	h.settle(ranking)
}

// finishHand ends a hand that never reached showdown: a premature win
// by the last seat standing. Payout happens in exactly one place, the
// settlement module, on this path too.
func (h *HandState) finishHand() {
	h.settle(h.rotatedLive())
}

func (h *HandState) settle(ranking []*Player) {
	pot := NewPot()
	h.carry = pot.Payout(h.table.Seats(), ranking, h.carry)
	h.settledPot = pot
	h.pot = h.carry

	for _, player := range h.table.Seats() {
		if player != nil {
			player.DisableMoves()
		}
	}
	showdown := h.status == HandStatus_SHOWDOWN
	h.status = HandStatus_HAND_DONE
	h.handDone = true
	h.actor = NoSeat
	h.result = h.buildResult(pot, showdown)

	// Payout has moved every invested chip into stacks (or the carry);
	// the investments are spent.
	for _, player := range h.table.Seats() {
		if player != nil {
			player.TotalInvestment = 0
		}
	}

	handLogger.Info().
		Uint32("handNum", h.handNum).
		Int("dealer", h.dealer).
		Msg("Hand is done")
}

// abortHand handles a deal failure: fatal to the current hand. Every
// invested chip goes back to its seat so nothing is stranded.
func (h *HandState) abortHand(err error) {
	handLogger.Error().
		Uint32("handNum", h.handNum).
		Err(err).
		Msg("Aborting hand, the deck could not deal")
	for _, player := range h.table.Seats() {
		if player == nil {
			continue
		}
		player.Stack = util.RoundDecimal(player.Stack+player.TotalInvestment, 2)
		player.TotalInvestment = 0
		player.DisableMoves()
	}
	h.pot = h.carry
	h.status = HandStatus_HAND_DONE
	h.handDone = true
	h.actor = NoSeat
}
