package game

import (
	"context"
	"sync"

	guuid "github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/ClericalAid/poker-server/logging"
	"github.com/ClericalAid/poker-server/poker"
	"github.com/ClericalAid/poker-server/util"
)

type GameConfig struct {
	GameCode   string
	SmallBlind float64
	BigBlind   float64
	TableSize  int
}

// GameMessageReceiver gets game state pushed at it after every
// mutation. The NATS broadcaster is the production implementation;
// tests plug in a recorder.
type GameMessageReceiver interface {
	HandStarted(gameCode string, snapshot *TableSnapshot)
	ActionTaken(gameCode string, snapshot *TableSnapshot)
	HandFinished(gameCode string, result *HandResult)
}

// Game serializes all access to one table. Every public method takes
// the game lock, so the hand state underneath never sees concurrent
// mutation.
type Game struct {
	mu     sync.Mutex
	config GameConfig
	logger *zerolog.Logger

	table   *Table
	hand    *HandState
	dealer  int
	handNum uint32

	// carry is the sub-cent remainder left over from the previous
	// hand's settlement, added to the next pot.
	carry float64

	receiver GameMessageReceiver
	persist  PersistHandResult
}

func NewGame(config GameConfig, receiver GameMessageReceiver, persist PersistHandResult) *Game {
	if config.TableSize <= 0 {
		config.TableSize = DefaultTableSize
	}
	if config.SmallBlind <= 0 {
		config.SmallBlind = util.PokerServerEnvironment.GetSmallBlind()
	}
	if config.BigBlind <= 0 {
		config.BigBlind = util.PokerServerEnvironment.GetBigBlind()
	}
	if config.GameCode == "" {
		config.GameCode = guuid.NewString()
	}
	logger := logging.GetZeroLogger("game::game", nil).
		With().Str(logging.GameCodeKey, config.GameCode).Logger()
	return &Game{
		config:   config,
		logger:   &logger,
		table:    NewTable(config.TableSize),
		dealer:   NoSeat,
		receiver: receiver,
		persist:  persist,
	}
}

func (g *Game) Code() string {
	return g.config.GameCode
}

// AddPlayer seats a player. An empty playerUUID gets a fresh one; the
// assigned seat and uuid come back so the caller can address the
// player later. A player seated mid-hand waits folded until the next
// hand starts.
func (g *Game) AddPlayer(name string, playerUUID string, buyIn float64) (int, string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if playerUUID == "" {
		playerUUID = guuid.NewString()
	} else if _, err := guuid.Parse(playerUUID); err != nil {
		return NoSeat, "", errors.Wrapf(err, "invalid player uuid [%s]", playerUUID)
	}
	seatNo, err := g.table.AddPlayer(name, playerUUID, buyIn)
	if err != nil {
		return NoSeat, "", err
	}
	g.logger.Info().
		Str(logging.PlayerNameKey, name).
		Int(logging.SeatNumKey, seatNo).
		Float64("buyIn", buyIn).
		Msg("Player took a seat")
	return seatNo, playerUUID, nil
}

// DisconnectPlayer flags the player as gone. Mid-hand the seat keeps
// playing (fold-to-act is the caller's policy); between hands the seat
// is freed immediately.
func (g *Game) DisconnectPlayer(playerUUID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, player := g.table.FindPlayer(playerUUID)
	if player == nil {
		return errors.Errorf("no player with uuid [%s]", playerUUID)
	}
	player.Disconnect()
	if !g.handActive() {
		g.table.RemoveDisconnected()
	}
	g.logger.Info().Str(logging.PlayerNameKey, player.Name).Msg("Player disconnected")
	return nil
}

// NewHand starts the next hand: sweeps busted and departed seats,
// advances the dealer button, shuffles a fresh deck and deals.
func (g *Game) NewHand(ctx context.Context) error {
	deck := poker.NewDeck(nil)
	if err := deck.Shuffle(ctx); err != nil {
		return err
	}
	return g.newHandFromDeck(deck)
}

// NewHandWithDeck runs a hand off a prearranged deck. Scripted games
// use this; the deck is dealt exactly as stacked, no shuffle.
func (g *Game) NewHandWithDeck(deck *poker.Deck) error {
	return g.newHandFromDeck(deck)
}

func (g *Game) newHandFromDeck(deck *poker.Deck) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.handActive() {
		return HandInProgressError{HandNum: g.handNum}
	}
	g.table.RemoveDisconnected()
	g.table.RemoveZeroChip()
	if g.table.PlayerCount() < headsUp {
		return NotEnoughPlayersError{PlayerCount: g.table.PlayerCount()}
	}

	for _, player := range g.table.Seats() {
		if player != nil {
			player.NewHand()
		}
	}
	g.dealer = g.table.NextOccupied(g.dealer)
	g.handNum++
	g.hand = newHandState(g.table, deck, g.config.SmallBlind, g.config.BigBlind,
		g.dealer, g.carry, g.handNum)
	if err := g.hand.begin(); err != nil {
		return err
	}
	g.logger.Info().
		Uint32(logging.HandNumKey, g.handNum).
		Int("dealer", g.dealer).
		Msg("New hand dealt")
	if g.receiver != nil {
		g.receiver.HandStarted(g.config.GameCode, g.snapshotLocked())
	}
	// Blinds alone can end the hand when every seat is forced all in.
	if g.hand.handDone {
		g.afterAction()
	}
	return nil
}

func (g *Game) handActive() bool {
	return g.hand != nil && !g.hand.handDone
}

// checkTurn validates that the hand is live and that it is this
// player's turn to act.
func (g *Game) checkTurn(playerUUID string) (int, error) {
	if !g.handActive() {
		return NoSeat, HandNotActiveError{}
	}
	seatNo, player := g.table.FindPlayer(playerUUID)
	if player == nil {
		return NoSeat, errors.Errorf("no player with uuid [%s]", playerUUID)
	}
	if seatNo != g.hand.actor {
		return NoSeat, InvalidActionError{SeatNo: seatNo, Action: "act", Msg: "acting out of turn"}
	}
	return seatNo, nil
}

func (g *Game) Call(ctx context.Context, playerUUID string) error {
	return g.applyAction(playerUUID, "CALL", func() error { return g.hand.Call() })
}

func (g *Game) Raise(ctx context.Context, playerUUID string, amount float64) error {
	return g.applyAction(playerUUID, "RAISE", func() error { return g.hand.Raise(amount) })
}

func (g *Game) AllIn(ctx context.Context, playerUUID string) error {
	return g.applyAction(playerUUID, "ALLIN", func() error { return g.hand.AllIn() })
}

func (g *Game) Fold(ctx context.Context, playerUUID string) error {
	return g.applyAction(playerUUID, "FOLD", func() error { return g.hand.Fold() })
}

func (g *Game) applyAction(playerUUID string, action string, apply func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	seatNo, err := g.checkTurn(playerUUID)
	if err != nil {
		return err
	}
	if err := apply(); err != nil {
		g.logger.Warn().
			Int(logging.SeatNumKey, seatNo).
			Str(logging.ActionKey, action).
			Err(err).
			Msg("Action rejected")
		return err
	}
	g.logger.Info().
		Uint32(logging.HandNumKey, g.handNum).
		Int(logging.SeatNumKey, seatNo).
		Str(logging.ActionKey, action).
		Str(logging.StreetKey, g.hand.status.String()).
		Msg("Action applied")
	g.afterAction()
	return nil
}

// afterAction publishes the new state and, when the hand just ended,
// persists the result and rolls the remainder into the next pot.
func (g *Game) afterAction() {
	if !g.hand.handDone {
		if g.receiver != nil {
			g.receiver.ActionTaken(g.config.GameCode, g.snapshotLocked())
		}
		return
	}

	g.carry = g.hand.carry
	result := g.hand.result
	if result != nil {
		result.GameCode = g.config.GameCode
		if g.persist != nil {
			if err := g.persist.SaveHandResult(context.Background(), result); err != nil {
				g.logger.Error().Err(err).
					Uint32(logging.HandNumKey, result.HandNum).
					Msg("Could not persist hand result")
			}
		}
		if g.receiver != nil {
			g.receiver.HandFinished(g.config.GameCode, result)
		}
	}
}

// Snapshot returns the public view of the game.
func (g *Game) Snapshot() *TableSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

func (g *Game) snapshotLocked() *TableSnapshot {
	snapshot := &TableSnapshot{
		GameCode:    g.config.GameCode,
		HandNum:     g.handNum,
		Status:      "WAITING",
		DealerSeat:  g.dealer,
		ActorSeat:   NoSeat,
		Seats:       make([]SeatSnapshot, 0, g.table.PlayerCount()),
		PlayerCount: g.table.PlayerCount(),
		TableSize:   g.table.TableSize(),
	}
	if g.hand != nil {
		snapshot.Status = g.hand.status.String()
		snapshot.Pot = g.hand.pot
		snapshot.SidePots = append([]float64(nil), g.hand.sidePots...)
		snapshot.TotalCall = g.hand.totalCall
		snapshot.MinRaise = g.hand.minRaise
		snapshot.ActorSeat = g.hand.actor
		if g.hand.actor != NoSeat {
			moves := g.hand.currentActor().Actions()
			snapshot.ActorMoves = &moves
		}
		for _, card := range g.hand.sharedCards {
			snapshot.Board = append(snapshot.Board, card.String())
		}
	}
	for seatNo, player := range g.table.Seats() {
		if player == nil {
			continue
		}
		snapshot.Seats = append(snapshot.Seats, SeatSnapshot{
			SeatNo:       seatNo,
			Name:         player.Name,
			Stack:        player.Stack,
			Invested:     player.TotalInvestment,
			Folded:       player.Folded,
			AllIn:        player.IsAllIn,
			Disconnected: player.Disconnected,
		})
	}
	return snapshot
}

// LastResult returns the most recent finished hand, nil before the
// first hand completes.
func (g *Game) LastResult() *HandResult {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.hand == nil {
		return nil
	}
	return g.hand.result
}

// PlayerActions returns the legal action set for a seated player, zeroed
// when it is not their turn.
func (g *Game) PlayerActions(playerUUID string) (ActionSet, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, player := g.table.FindPlayer(playerUUID)
	if player == nil {
		return ActionSet{}, errors.Errorf("no player with uuid [%s]", playerUUID)
	}
	return player.Actions(), nil
}
