package nats

import (
	"fmt"

	natsgo "github.com/nats-io/nats.go"

	"github.com/ClericalAid/poker-server/game"
	"github.com/ClericalAid/poker-server/logging"
)

var natsLogger = logging.GetZeroLogger("nats::broadcast", nil)

// GameBroadcaster pushes game state to nats subjects, one subject tree
// per game. Outbound only; player actions arrive over the rest api.
//
// Subjects:
//
//	poker.game.<gameCode>.hand      new hand dealt
//	poker.game.<gameCode>.action    state after each action
//	poker.game.<gameCode>.result    finished hand result
type GameBroadcaster struct {
	nc *natsgo.Conn
}

func NewGameBroadcaster(url string) (*GameBroadcaster, error) {
	nc, err := natsgo.Connect(url)
	if err != nil {
		return nil, err
	}
	natsLogger.Info().Str("url", url).Msg("Connected to nats")
	return &GameBroadcaster{nc: nc}, nil
}

func (b *GameBroadcaster) Close() {
	b.nc.Close()
}

func handSubject(gameCode string) string {
	return fmt.Sprintf("poker.game.%s.hand", gameCode)
}

func actionSubject(gameCode string) string {
	return fmt.Sprintf("poker.game.%s.action", gameCode)
}

func resultSubject(gameCode string) string {
	return fmt.Sprintf("poker.game.%s.result", gameCode)
}

func (b *GameBroadcaster) HandStarted(gameCode string, snapshot *game.TableSnapshot) {
	b.publishSnapshot(handSubject(gameCode), gameCode, snapshot)
}

func (b *GameBroadcaster) ActionTaken(gameCode string, snapshot *game.TableSnapshot) {
	b.publishSnapshot(actionSubject(gameCode), gameCode, snapshot)
}

func (b *GameBroadcaster) HandFinished(gameCode string, result *game.HandResult) {
	data, err := result.ToJSON()
	if err != nil {
		natsLogger.Error().Err(err).
			Str(logging.GameCodeKey, gameCode).
			Msg("Could not marshal hand result")
		return
	}
	b.publish(resultSubject(gameCode), gameCode, data)
}

func (b *GameBroadcaster) publishSnapshot(subject string, gameCode string, snapshot *game.TableSnapshot) {
	data, err := snapshot.ToJSON()
	if err != nil {
		natsLogger.Error().Err(err).
			Str(logging.GameCodeKey, gameCode).
			Msg("Could not marshal snapshot")
		return
	}
	b.publish(subject, gameCode, data)
}

func (b *GameBroadcaster) publish(subject string, gameCode string, data []byte) {
	if err := b.nc.Publish(subject, data); err != nil {
		natsLogger.Error().Err(err).
			Str(logging.GameCodeKey, gameCode).
			Str("subject", subject).
			Msg("Could not publish to nats")
	}
}
