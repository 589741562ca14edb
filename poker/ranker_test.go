package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rankerWith(cards ...string) *HandRanker {
	hr := NewHandRanker()
	for _, s := range cards {
		hr.AddCard(NewCard(s))
	}
	return hr
}

func TestAddCardBucketsBySuit(t *testing.T) {
	hr := rankerWith("4d", "Qs", "2d", "9c", "7c", "Qh", "6d")

	assert.Equal(t, []int32{12}, hr.SuitRanks(Spade))
	assert.Equal(t, []int32{12}, hr.SuitRanks(Heart))
	assert.Equal(t, []int32{9, 7}, hr.SuitRanks(Club))
	assert.Equal(t, []int32{4, 2, 6}, hr.SuitRanks(Diamond))
}

func TestScoreHand(t *testing.T) {
	testCases := []struct {
		name     string
		cards    []string
		expected []int32
	}{
		{
			name:     "straight flush, eight high",
			cards:    []string{"4d", "5d", "6d", "7d", "8d", "Ad", "8c"},
			expected: []int32{9, 8},
		},
		{
			name:     "quad threes takes the lone ten as kicker",
			cards:    []string{"3d", "3s", "3h", "3c", "8s", "8h", "Ts"},
			expected: []int32{8, 3, 10},
		},
		{
			name:     "three pairs with a lone ten",
			cards:    []string{"6d", "6s", "3s", "3h", "8c", "8s", "Ts"},
			expected: []int32{3, 8, 6, 10},
		},
		{
			name:     "three pairs, third pair supplies the kicker",
			cards:    []string{"6d", "6s", "3s", "3h", "8c", "8s", "2s"},
			expected: []int32{3, 8, 6, 3},
		},
		{
			name:     "wheel straight",
			cards:    []string{"Ad", "2s", "3h", "4c", "5s", "9d", "Jh"},
			expected: []int32{5, 5},
		},
		{
			name:     "straight picks the strongest high card",
			cards:    []string{"5d", "6s", "7h", "8c", "9s", "Td", "2h"},
			expected: []int32{5, 10},
		},
		{
			name:     "flush, top five ranks",
			cards:    []string{"2s", "7s", "9s", "Js", "Ks", "3d", "4h"},
			expected: []int32{6, 13, 11, 9, 7, 2},
		},
		{
			name:     "full house",
			cards:    []string{"9d", "9s", "9h", "4c", "4s", "Kd", "2h"},
			expected: []int32{7, 9, 4},
		},
		{
			name:     "full house prefers the higher pair",
			cards:    []string{"9d", "9s", "9h", "4c", "4s", "Kd", "Kh"},
			expected: []int32{7, 9, 13},
		},
		{
			name:     "trips with two kickers",
			cards:    []string{"9d", "9s", "9h", "4c", "6s", "Kd", "2h"},
			expected: []int32{4, 9, 13, 6},
		},
		{
			name:     "pair with three kickers",
			cards:    []string{"9d", "9s", "Ah", "4c", "6s", "Kd", "2h"},
			expected: []int32{2, 9, 14, 13, 6},
		},
		{
			name:     "high card, top five ranks",
			cards:    []string{"9d", "Js", "Ah", "4c", "6s", "Kd", "2h"},
			expected: []int32{1, 14, 13, 11, 9, 6},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hr := rankerWith(tc.cards...)
			assert.Equal(t, tc.expected, hr.ScoreHand())
		})
	}
}

func TestScoreHandIsIdempotent(t *testing.T) {
	hr := rankerWith("3d", "3s", "3h", "3c", "8s", "8h", "Ts")
	first := hr.ScoreHand()
	second := hr.ScoreHand()
	assert.Equal(t, first, second)
}

func TestResetClearsAccumulator(t *testing.T) {
	hr := rankerWith("3d", "3s", "3h", "3c", "8s", "8h", "Ts")
	hr.Reset()
	hr.AddCard(NewCard("Ah"))
	hr.AddCard(NewCard("Kh"))
	hr.AddCard(NewCard("2c"))
	hr.AddCard(NewCard("7d"))
	hr.AddCard(NewCard("9s"))

	assert.Equal(t, []int32{1, 14, 13, 9, 7, 2}, hr.ScoreHand())
}

func TestCompareScores(t *testing.T) {
	assert.Positive(t, CompareScores([]int32{6, 2, 3}, []int32{5, 11, 9}))
	assert.Negative(t, CompareScores([]int32{2, 9, 14}, []int32{3, 8, 6}))
	assert.Zero(t, CompareScores([]int32{9, 8}, []int32{9, 8}))
	// Comparison only covers the shared prefix.
	assert.True(t, ScoresTied([]int32{9, 8}, []int32{9, 8, 1}))
	assert.False(t, ScoresTied([]int32{8, 3, 10}, []int32{8, 3, 8}))
}
