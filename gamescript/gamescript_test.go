package gamescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestReadGameScript(t *testing.T) {
	script, err := ReadGameScript("test_scripts/heads-up.yaml")
	require.NoError(t, err)

	assert.Equal(t, "heads-up-game", script.Game.GameCode)
	assert.Equal(t, 0.5, script.Game.SmallBlind)
	assert.Equal(t, 1.0, script.Game.BigBlind)
	assert.Equal(t, 2, script.Game.TableSize)

	require.Len(t, script.StartingSeats, 2)
	assert.Equal(t, "alice", script.StartingSeats[0].Name)
	assert.Equal(t, 50.0, script.StartingSeats[0].BuyIn)

	require.Len(t, script.Hands, 1)
	hand := script.Hands[0]
	assert.Equal(t, []string{"Ah", "Kh"}, hand.Setup.SeatCards[0].Cards)
	assert.Equal(t, []string{"2s", "7d", "Jc"}, hand.Setup.Flop)
	assert.Equal(t, "4h", hand.Setup.Turn)
	assert.Equal(t, "Th", hand.Setup.River)

	require.Len(t, hand.Preflop, 2)
	assert.Equal(t, SeatAction{Seat: 0, Action: "RAISE", Amount: 3}, hand.Preflop[0])
	assert.Equal(t, SeatAction{Seat: 1, Action: "CALL"}, hand.Preflop[1])
	require.Len(t, hand.Flop, 3)
	assert.Equal(t, SeatAction{Seat: 0, Action: "BET", Amount: 4}, hand.Flop[1])
}

func TestReadGameScriptMissingFile(t *testing.T) {
	_, err := ReadGameScript("test_scripts/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestSeatActionParsing(t *testing.T) {
	var action SeatAction
	require.NoError(t, yaml.Unmarshal([]byte(`"2, raise, 4.5"`), &action))
	assert.Equal(t, SeatAction{Seat: 2, Action: "RAISE", Amount: 4.5}, action)

	require.NoError(t, yaml.Unmarshal([]byte(`"0, FOLD"`), &action))
	assert.Equal(t, SeatAction{Seat: 0, Action: "FOLD", Amount: 0}, action)
}

func TestSeatActionParsingErrors(t *testing.T) {
	var action SeatAction
	assert.Error(t, yaml.Unmarshal([]byte(`"just-one-token"`), &action))
	assert.Error(t, yaml.Unmarshal([]byte(`"x, CALL"`), &action))
	assert.Error(t, yaml.Unmarshal([]byte(`"1, RAISE, lots"`), &action))
}

func TestValidateRejectsBadScripts(t *testing.T) {
	script := Script{
		Game: GameDef{SmallBlind: 1, BigBlind: 2},
		StartingSeats: []StartingSeat{
			{Seat: 0, Name: "alice", BuyIn: 100},
		},
	}
	assert.Error(t, script.Validate())

	script.StartingSeats = append(script.StartingSeats, StartingSeat{Seat: 1, Name: "bob", BuyIn: 100})
	require.NoError(t, script.Validate())

	script.Hands = []Hand{{Setup: HandSetup{Flop: []string{"Ah", "Kd"}}}}
	assert.Error(t, script.Validate())

	script.Game.BigBlind = 0
	assert.Error(t, script.Validate())
}
