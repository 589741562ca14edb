package util

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

var environmentLogger = log.With().Str("logger_name", "util::environment").Logger()

type pokerServerEnvironment struct {
	RedisHost  string
	RedisPort  string
	RedisPW    string
	RedisDB    string
	NatsURL    string
	ListenAddr string
	SmallBlind string
	BigBlind   string
	TableSize  string
}

// PokerServerEnvironment is a helper object for accessing environment variables.
var PokerServerEnvironment = &pokerServerEnvironment{
	RedisHost:  "REDIS_HOST",
	RedisPort:  "REDIS_PORT",
	RedisPW:    "REDIS_PW",
	RedisDB:    "REDIS_DB",
	NatsURL:    "NATS_URL",
	ListenAddr: "LISTEN_ADDR",
	SmallBlind: "SMALL_BLIND",
	BigBlind:   "BIG_BLIND",
	TableSize:  "TABLE_SIZE",
}

func (p *pokerServerEnvironment) GetRedisHost() string {
	host := os.Getenv(p.RedisHost)
	if host == "" {
		msg := fmt.Sprintf("%s is not defined", p.RedisHost)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return host
}

func (p *pokerServerEnvironment) GetRedisPort() int {
	portStr := os.Getenv(p.RedisPort)
	if portStr == "" {
		msg := fmt.Sprintf("%s is not defined", p.RedisPort)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	portNum, err := strconv.Atoi(portStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid Redis port %s", portStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return portNum
}

func (p *pokerServerEnvironment) GetRedisPW() string {
	pw := os.Getenv(p.RedisPW)
	return pw
}

func (p *pokerServerEnvironment) GetRedisDB() int {
	dbStr := os.Getenv(p.RedisDB)
	if dbStr == "" {
		return 0
	}
	dbNum, err := strconv.Atoi(dbStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid Redis db %s", dbStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return dbNum
}

func (p *pokerServerEnvironment) IsRedisConfigured() bool {
	return os.Getenv(p.RedisHost) != ""
}

func (p *pokerServerEnvironment) GetNatsURL() string {
	return os.Getenv(p.NatsURL)
}

func (p *pokerServerEnvironment) GetListenAddr() string {
	addr := os.Getenv(p.ListenAddr)
	if addr == "" {
		return ":8080"
	}
	return addr
}

func (p *pokerServerEnvironment) GetSmallBlind() float64 {
	return p.getFloat(p.SmallBlind, 1.0)
}

func (p *pokerServerEnvironment) GetBigBlind() float64 {
	return p.getFloat(p.BigBlind, 2.0)
}

func (p *pokerServerEnvironment) GetTableSize() int {
	sizeStr := os.Getenv(p.TableSize)
	if sizeStr == "" {
		return 6
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid table size %s", sizeStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return size
}

func (p *pokerServerEnvironment) getFloat(key string, defaultVal float64) float64 {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		msg := fmt.Sprintf("Invalid value %s for %s", valStr, key)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return val
}
