package main

import (
	"context"
	"flag"
	"os"

	"github.com/ClericalAid/poker-server/game"
	"github.com/ClericalAid/poker-server/gamescript"
	"github.com/ClericalAid/poker-server/logging"
	"github.com/ClericalAid/poker-server/nats"
	"github.com/ClericalAid/poker-server/rest"
	"github.com/ClericalAid/poker-server/util"
)

var mainLogger = logging.GetZeroLogger("main::main", nil)

var (
	gameScriptFile = flag.String("game-script", "", "play a scripted game from a yaml file and exit")
	listenAddr     = flag.String("listen", "", "rest listen address, overrides LISTEN_ADDR")
)

func main() {
	flag.Parse()

	persist := buildPersist()

	if *gameScriptFile != "" {
		runScript(*gameScriptFile, persist)
		return
	}

	var receiver game.GameMessageReceiver
	natsURL := util.PokerServerEnvironment.GetNatsURL()
	if natsURL != "" {
		broadcaster, err := nats.NewGameBroadcaster(natsURL)
		if err != nil {
			mainLogger.Fatal().Err(err).Str("url", natsURL).Msg("Could not connect to nats")
		}
		defer broadcaster.Close()
		receiver = broadcaster
	}

	manager := game.NewManager(receiver, persist)
	server := rest.NewServer(manager)

	addr := *listenAddr
	if addr == "" {
		addr = util.PokerServerEnvironment.GetListenAddr()
	}
	if err := server.Run(addr); err != nil {
		mainLogger.Fatal().Err(err).Msg("Rest server stopped")
	}
}

func buildPersist() game.PersistHandResult {
	env := util.PokerServerEnvironment
	if env.IsRedisConfigured() {
		mainLogger.Info().
			Str("redisHost", env.GetRedisHost()).
			Int("redisPort", env.GetRedisPort()).
			Msg("Persisting hand results to redis")
		return game.NewRedisHandResultPersist(env.GetRedisHost(), env.GetRedisPort(),
			env.GetRedisPW(), env.GetRedisDB())
	}
	return game.NewMemoryHandResultPersist()
}

func runScript(fileName string, persist game.PersistHandResult) {
	script, err := gamescript.ReadGameScript(fileName)
	if err != nil {
		mainLogger.Error().Err(err).Str("file", fileName).Msg("Could not load game script")
		os.Exit(1)
	}
	runner := game.NewScriptRunner(script, nil, persist)
	if err := runner.Run(context.Background()); err != nil {
		mainLogger.Error().Err(err).Str("file", fileName).Msg("Game script failed")
		os.Exit(1)
	}
	mainLogger.Info().Str("file", fileName).Msg("Game script finished")
}
