package game

import (
	"context"
	"fmt"

	redis "github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// RedisHandResultPersist stores hand results in a redis hash per game,
// field = hand number.
type RedisHandResultPersist struct {
	rdclient *redis.Client
}

func NewRedisHandResultPersist(redisHost string, redisPort int, redisPW string, redisDB int) *RedisHandResultPersist {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPW,
		DB:       redisDB,
	})
	return &RedisHandResultPersist{rdclient: client}
}

func gameResultKey(gameCode string) string {
	return fmt.Sprintf("handresults:%s", gameCode)
}

func (r *RedisHandResultPersist) SaveHandResult(ctx context.Context, result *HandResult) error {
	data, err := result.ToJSON()
	if err != nil {
		return errors.Wrapf(err, "could not marshal hand %d of game %s", result.HandNum, result.GameCode)
	}
	field := fmt.Sprintf("%d", result.HandNum)
	err = r.rdclient.HSet(ctx, gameResultKey(result.GameCode), field, data).Err()
	if err != nil {
		return errors.Wrapf(err, "could not save hand %d of game %s to redis", result.HandNum, result.GameCode)
	}
	return nil
}

func (r *RedisHandResultPersist) LoadHandResult(ctx context.Context, gameCode string, handNum uint32) (*HandResult, error) {
	field := fmt.Sprintf("%d", handNum)
	data, err := r.rdclient.HGet(ctx, gameResultKey(gameCode), field).Result()
	if err == redis.Nil {
		return nil, errors.Errorf("no result for hand %d of game %s", handNum, gameCode)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not load hand %d of game %s from redis", handNum, gameCode)
	}
	return HandResultFromJSON([]byte(data))
}

func (r *RedisHandResultPersist) HandCount(ctx context.Context, gameCode string) (int, error) {
	count, err := r.rdclient.HLen(ctx, gameResultKey(gameCode)).Result()
	if err != nil {
		return 0, errors.Wrapf(err, "could not count hands of game %s in redis", gameCode)
	}
	return int(count), nil
}
