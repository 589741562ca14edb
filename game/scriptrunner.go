package game

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/ClericalAid/poker-server/gamescript"
	"github.com/ClericalAid/poker-server/logging"
	"github.com/ClericalAid/poker-server/poker"
)

var runnerLogger = logging.GetZeroLogger("game::scriptrunner", nil)

// ScriptRunner plays a scripted game end to end: seats the listed
// players, stacks the deck for each hand and applies the scripted
// actions street by street.
type ScriptRunner struct {
	script *gamescript.Script
	game   *Game
	// seatUUID maps script seat numbers to the uuids the game assigned.
	seatUUID map[int]string
}

func NewScriptRunner(script *gamescript.Script, receiver GameMessageReceiver, persist PersistHandResult) *ScriptRunner {
	config := GameConfig{
		GameCode:   script.Game.GameCode,
		SmallBlind: script.Game.SmallBlind,
		BigBlind:   script.Game.BigBlind,
		TableSize:  script.Game.TableSize,
	}
	return &ScriptRunner{
		script:   script,
		game:     NewGame(config, receiver, persist),
		seatUUID: make(map[int]string),
	}
}

func (r *ScriptRunner) Game() *Game {
	return r.game
}

// Run seats every starting player and plays each scripted hand.
func (r *ScriptRunner) Run(ctx context.Context) error {
	for _, seat := range r.script.StartingSeats {
		seatNo, playerUUID, err := r.game.AddPlayer(seat.Name, "", seat.BuyIn)
		if err != nil {
			return errors.Wrapf(err, "could not seat %s", seat.Name)
		}
		if seatNo != seat.Seat {
			runnerLogger.Warn().
				Str(logging.PlayerNameKey, seat.Name).
				Int("scriptSeat", seat.Seat).
				Int(logging.SeatNumKey, seatNo).
				Msg("Script seat differs from assigned seat")
		}
		r.seatUUID[seatNo] = playerUUID
	}

	for i, hand := range r.script.Hands {
		if err := r.runHand(ctx, hand); err != nil {
			return errors.Wrapf(err, "hand %d failed", i+1)
		}
	}
	return nil
}

func (r *ScriptRunner) runHand(ctx context.Context, hand gamescript.Hand) error {
	if len(hand.Setup.SeatCards) > 0 {
		deck, err := r.buildDeck(hand.Setup)
		if err != nil {
			return err
		}
		if err := r.game.NewHandWithDeck(deck); err != nil {
			return err
		}
	} else {
		if err := r.game.NewHand(ctx); err != nil {
			return err
		}
	}

	for _, street := range [][]gamescript.SeatAction{hand.Preflop, hand.Flop, hand.Turn, hand.River} {
		for _, action := range street {
			if err := r.applyAction(ctx, action); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildDeck stacks a deck that deals the scripted hole cards and board.
// Hole cards are laid out in seat order because that is the deal order.
func (r *ScriptRunner) buildDeck(setup gamescript.HandSetup) (*poker.Deck, error) {
	seatCards := append([]gamescript.SeatCards(nil), setup.SeatCards...)
	sort.Slice(seatCards, func(i, j int) bool { return seatCards[i].Seat < seatCards[j].Seat })

	playerCards := make([]poker.CardsInAscii, 0, len(seatCards))
	for _, sc := range seatCards {
		if len(sc.Cards) != 2 {
			return nil, errors.Errorf("seat %d must have exactly 2 hole cards", sc.Seat)
		}
		playerCards = append(playerCards, poker.CardsInAscii(sc.Cards))
	}
	if len(setup.Flop) != 3 || setup.Turn == "" || setup.River == "" {
		return nil, errors.New("scripted setup needs a full board")
	}
	return poker.DeckFromScript(playerCards, poker.CardsInAscii(setup.Flop),
		poker.NewCard(setup.Turn), poker.NewCard(setup.River)), nil
}

func (r *ScriptRunner) applyAction(ctx context.Context, action gamescript.SeatAction) error {
	playerUUID, ok := r.seatUUID[action.Seat]
	if !ok {
		return errors.Errorf("no player at scripted seat %d", action.Seat)
	}
	switch action.Action {
	case "CALL", "CHECK":
		return r.game.Call(ctx, playerUUID)
	case "RAISE", "BET":
		return r.game.Raise(ctx, playerUUID, action.Amount)
	case "ALLIN":
		return r.game.AllIn(ctx, playerUUID)
	case "FOLD":
		return r.game.Fold(ctx, playerUUID)
	}
	return errors.Errorf("unknown scripted action [%s]", action.Action)
}
