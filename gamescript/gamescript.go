package gamescript

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Script drives a whole game from a yaml file: who sits where, what
// the deck deals each hand and the action sequence for every street.
type Script struct {
	Game          GameDef        `yaml:"game"`
	StartingSeats []StartingSeat `yaml:"starting-seats"`
	Hands         []Hand         `yaml:"hands"`
}

type GameDef struct {
	GameCode   string  `yaml:"game-code"`
	SmallBlind float64 `yaml:"small-blind"`
	BigBlind   float64 `yaml:"big-blind"`
	TableSize  int     `yaml:"table-size"`
}

type StartingSeat struct {
	Seat  int     `yaml:"seat"`
	Name  string  `yaml:"name"`
	BuyIn float64 `yaml:"buy-in"`
}

type Hand struct {
	Num     uint32       `yaml:"num"`
	Setup   HandSetup    `yaml:"setup"`
	Preflop []SeatAction `yaml:"preflop"`
	Flop    []SeatAction `yaml:"flop"`
	Turn    []SeatAction `yaml:"turn"`
	River   []SeatAction `yaml:"river"`
}

// HandSetup stacks the deck. Seat cards are listed in seat order; flop,
// turn and river name the exact board.
type HandSetup struct {
	SeatCards []SeatCards `yaml:"seat-cards"`
	Flop      []string    `yaml:"flop"`
	Turn      string      `yaml:"turn"`
	River     string      `yaml:"river"`
}

type SeatCards struct {
	Seat  int      `yaml:"seat"`
	Cards []string `yaml:"cards"`
}

// SeatAction is written in the script as a compact scalar,
// "seat, ACTION" or "seat, ACTION, amount". E.g. "1, RAISE, 4".
type SeatAction struct {
	Seat   int
	Action string
	Amount float64
}

func (s *SeatAction) UnmarshalYAML(value *yaml.Node) error {
	var line string
	if err := value.Decode(&line); err != nil {
		return err
	}
	tokens := strings.Split(line, ",")
	if len(tokens) != 2 && len(tokens) != 3 {
		return errors.Errorf("invalid seat action [%s]", line)
	}
	seat, err := strconv.Atoi(strings.TrimSpace(tokens[0]))
	if err != nil {
		return errors.Wrapf(err, "invalid seat in action [%s]", line)
	}
	s.Seat = seat
	s.Action = strings.ToUpper(strings.TrimSpace(tokens[1]))
	s.Amount = 0
	if len(tokens) == 3 {
		amount, err := strconv.ParseFloat(strings.TrimSpace(tokens[2]), 64)
		if err != nil {
			return errors.Wrapf(err, "invalid amount in action [%s]", line)
		}
		s.Amount = amount
	}
	return nil
}

// ReadGameScript loads and validates a script file.
func ReadGameScript(fileName string) (*Script, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading game script %s", fileName)
	}
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, errors.Wrapf(err, "error parsing game script %s", fileName)
	}
	if err := script.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid game script %s", fileName)
	}
	return &script, nil
}

func (s *Script) Validate() error {
	if len(s.StartingSeats) < 2 {
		return errors.Errorf("script needs at least 2 starting seats, has %d", len(s.StartingSeats))
	}
	if s.Game.BigBlind <= 0 || s.Game.SmallBlind <= 0 {
		return errors.New("script blinds must be positive")
	}
	for i, hand := range s.Hands {
		if len(hand.Setup.Flop) != 0 && len(hand.Setup.Flop) != 3 {
			return errors.Errorf("hand %d: flop must have exactly 3 cards", i+1)
		}
	}
	return nil
}
