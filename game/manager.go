package game

import (
	"sync"

	guuid "github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ClericalAid/poker-server/logging"
)

var managerLogger = logging.GetZeroLogger("game::manager", nil)

// Manager tracks every active game in the process by game code.
type Manager struct {
	mu       sync.RWMutex
	games    map[string]*Game
	receiver GameMessageReceiver
	persist  PersistHandResult
}

func NewManager(receiver GameMessageReceiver, persist PersistHandResult) *Manager {
	return &Manager{
		games:    make(map[string]*Game),
		receiver: receiver,
		persist:  persist,
	}
}

// NewGame creates and registers a game. An empty game code gets a
// generated one.
func (m *Manager) NewGame(config GameConfig) (*Game, error) {
	if config.GameCode == "" {
		config.GameCode = guuid.NewString()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.games[config.GameCode]; exists {
		return nil, errors.Errorf("game [%s] already exists", config.GameCode)
	}
	g := NewGame(config, m.receiver, m.persist)
	m.games[config.GameCode] = g
	managerLogger.Info().
		Str(logging.GameCodeKey, config.GameCode).
		Float64("smallBlind", config.SmallBlind).
		Float64("bigBlind", config.BigBlind).
		Msg("Game created")
	return g, nil
}

func (m *Manager) Game(gameCode string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[gameCode]
	if !ok {
		return nil, errors.Errorf("no game with code [%s]", gameCode)
	}
	return g, nil
}

func (m *Manager) EndGame(gameCode string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, gameCode)
	managerLogger.Info().Str(logging.GameCodeKey, gameCode).Msg("Game ended")
}

func (m *Manager) GameCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
