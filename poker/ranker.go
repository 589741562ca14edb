package poker

import (
	"sort"

	"github.com/rs/zerolog/log"
)

var rankerLogger = log.With().Str("logger_name", "poker::ranker").Logger()

// Hand categories, strongest to weakest.
const (
	StraightFlush int32 = 9
	Quad          int32 = 8
	FullHouse     int32 = 7
	Flush         int32 = 6
	Straight      int32 = 5
	Triple        int32 = 4
	TwoPair       int32 = 3
	Pair          int32 = 2
	HighCard      int32 = 1
)

// HandSize is the most cards a seat can ever see: two hole cards plus
// five shared cards.
const HandSize = 7

// HandRanker accumulates up to seven cards for one seat and scores them.
// Cards are fed one at a time as they become visible to the seat; the
// accumulator is reset at the start of every hand.
//
// The score is a vector [category, tiebreaks...] compared
// lexicographically, higher is better at each position. Two hands are
// tied iff every compared element is equal over the shorter vector's
// length.
type HandRanker struct {
	histogram map[int32]int32
	suits     map[Suit][]int32
	cardCount int
}

func NewHandRanker() *HandRanker {
	hr := &HandRanker{}
	hr.Reset()
	return hr
}

// Reset clears the accumulator for a new hand.
func (hr *HandRanker) Reset() {
	hr.histogram = make(map[int32]int32)
	hr.suits = map[Suit][]int32{
		Spade:   {},
		Heart:   {},
		Club:    {},
		Diamond: {},
	}
	hr.cardCount = 0
}

// AddCard buckets the card's rank into its suit list and counts it in
// the rank histogram.
func (hr *HandRanker) AddCard(card Card) {
	if hr.cardCount >= HandSize {
		rankerLogger.Warn().Msgf("Hand already has %d cards, ignoring %s", hr.cardCount, card.String())
		return
	}
	hr.suits[card.Suit] = append(hr.suits[card.Suit], card.Rank)
	hr.histogram[card.Rank]++
	hr.cardCount++
}

// SuitRanks returns the accumulated ranks for one suit, in the order the
// cards were added.
func (hr *HandRanker) SuitRanks(suit Suit) []int32 {
	return hr.suits[suit]
}

type rankCount struct {
	rank  int32
	count int32
}

// ScoreHand computes the hand's score vector. It does not mutate the
// accumulator: scoring twice on an unmodified ranker yields the
// identical vector.
func (hr *HandRanker) ScoreHand() []int32 {
	handRank := int32(0)
	var handValue []int32

	// Flush check, including straight flush inside the suit bucket.
	for _, suit := range allSuits {
		bucket := hr.suits[suit]
		if len(bucket) < 5 {
			continue
		}
		sorted := make([]int32, len(bucket))
		copy(sorted, bucket)
		sortRanksDescending(sorted)
		if high, ok := straightHigh(sorted); ok {
			handRank = StraightFlush
			handValue = []int32{high}
		} else {
			handRank = Flush
			handValue = sorted[:5]
		}
	}

	// Straight check over all distinct ranks.
	if handRank <= Straight {
		values := make([]int32, 0, len(hr.histogram))
		for rank := range hr.histogram {
			values = append(values, rank)
		}
		sortRanksDescending(values)
		if high, ok := straightHigh(values); ok {
			handRank = Straight
			handValue = []int32{high}
		}
	}

	handRank, handValue = hr.matchingCards(handRank, handValue)
	return append([]int32{handRank}, handValue...)
}

// matchingCards evaluates the histogram-based hands. The histogram is
// sorted by (count desc, rank desc); when the top bucket is a quad or the
// top two buckets are both pairs, the remaining buckets are resorted by
// raw rank so a paired card cannot shadow a stronger lone kicker.
func (hr *HandRanker) matchingCards(handRank int32, handValue []int32) (int32, []int32) {
	sorted := make([]rankCount, 0, len(hr.histogram))
	for rank, count := range hr.histogram {
		sorted = append(sorted, rankCount{rank: rank, count: count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count == sorted[j].count {
			return sorted[i].rank > sorted[j].rank
		}
		return sorted[i].count > sorted[j].count
	})

	if sorted[0].count == 4 {
		resortByRank(sorted[1:])
	} else if len(sorted) > 1 && sorted[0].count == 2 && sorted[1].count == 2 {
		resortByRank(sorted[2:])
	}

	if sorted[0].count == 4 && handRank < Quad {
		handRank = Quad
		handValue = []int32{sorted[0].rank, sorted[1].rank}
	} else if sorted[0].count == 3 && handRank < FullHouse {
		if sorted[1].count > 1 {
			handRank = FullHouse
			handValue = []int32{sorted[0].rank, sorted[1].rank}
		} else if handRank < Triple {
			handRank = Triple
			handValue = []int32{sorted[0].rank, sorted[1].rank, sorted[2].rank}
		}
	} else if sorted[0].count == 2 && handRank < TwoPair {
		if sorted[1].count > 1 {
			handRank = TwoPair
			handValue = []int32{sorted[0].rank, sorted[1].rank, sorted[2].rank}
		} else if handRank < Pair {
			handRank = Pair
			handValue = []int32{sorted[0].rank, sorted[1].rank, sorted[2].rank, sorted[3].rank}
		}
	} else if handRank < HighCard {
		handRank = HighCard
		handValue = []int32{sorted[0].rank, sorted[1].rank, sorted[2].rank, sorted[3].rank, sorted[4].rank}
	}

	return handRank, handValue
}

// straightHigh looks for five consecutive values in a descending sorted
// list of distinct ranks. The wheel A-2-3-4-5 counts as a straight with
// high card 5.
func straightHigh(values []int32) (int32, bool) {
	if len(values) < 5 {
		return 0, false
	}
	for i := 0; i <= len(values)-5; i++ {
		if values[i]-values[i+4] == 4 {
			return values[i], true
		}
	}
	if values[0] == Ace && values[len(values)-4] == 5 {
		return 5, true
	}
	return 0, false
}

func sortRanksDescending(ranks []int32) {
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })
}

func resortByRank(buckets []rankCount) {
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].rank > buckets[j].rank })
}

// CompareScores orders two score vectors lexicographically over their
// shared prefix. It returns a positive number if a is stronger, negative
// if b is stronger, and zero if the hands are tied.
func CompareScores(a []int32, b []int32) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return int(a[i] - b[i])
		}
	}
	return 0
}

// ScoresTied reports whether two score vectors are equal over the
// shorter vector's length.
func ScoresTied(a []int32, b []int32) bool {
	return CompareScores(a, b) == 0
}
