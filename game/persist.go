package game

import "context"

// PersistHandResult stores finished hands keyed by game code and hand
// number. Memory is the default; redis when configured.
type PersistHandResult interface {
	SaveHandResult(ctx context.Context, result *HandResult) error
	LoadHandResult(ctx context.Context, gameCode string, handNum uint32) (*HandResult, error)
	HandCount(ctx context.Context, gameCode string) (int, error)
}
