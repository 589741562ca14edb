package poker

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type Suit int32

const (
	Spade Suit = iota
	Heart
	Club
	Diamond
)

const (
	// MinRank is the deuce.
	MinRank int32 = 2
	// MaxRank is the ace. King is 13, queen is 12, and so on down to the deuce.
	MaxRank int32 = 14
	// Ace is the highest rank, but can also head the A-2-3-4-5 wheel straight.
	Ace int32 = 14
)

var allSuits = [...]Suit{Spade, Heart, Club, Diamond}

var strRanks = "23456789TJQKA"

var charSuitToSuit = map[uint8]Suit{
	's': Spade,
	'h': Heart,
	'c': Club,
	'd': Diamond,
}

var suitToCharSuit = map[Suit]string{
	Spade:   "s",
	Heart:   "h",
	Club:    "c",
	Diamond: "d",
}

var prettySuits = map[Suit]string{
	Spade:   "♠",
	Heart:   "❤",
	Club:    "♣",
	Diamond: "♦",
}

// Card is an immutable (suit, rank) value. Cards are copied freely and
// carry no ownership semantics.
type Card struct {
	Suit Suit
	Rank int32
}

// NewCard parses a two character card string such as "As" or "Td".
// The first character is the rank, the second is the suit.
func NewCard(s string) Card {
	rank := int32(strings.IndexByte(strRanks, s[0])) + MinRank
	suit := charSuitToSuit[s[1]]
	return Card{Suit: suit, Rank: rank}
}

func (c Card) String() string {
	return string(strRanks[c.Rank-MinRank]) + suitToCharSuit[c.Suit]
}

func (c Card) PrettyPrint() string {
	return string(strRanks[c.Rank-MinRank]) + prettySuits[c.Suit]
}

func (c *Card) MarshalJSON() ([]byte, error) {
	return []byte("\"" + c.String() + "\""), nil
}

func (c *Card) UnmarshalJSON(b []byte) error {
	if len(b) != 4 || b[0] != '"' || b[3] != '"' {
		return errors.Errorf("card must be a two character string: %s", string(b))
	}
	if strings.IndexByte(strRanks, b[1]) < 0 {
		return errors.Errorf("unknown card rank: %c", b[1])
	}
	if _, ok := charSuitToSuit[b[2]]; !ok {
		return errors.Errorf("unknown card suit: %c", b[2])
	}
	*c = NewCard(string(b[1:3]))
	return nil
}

func CardsToString(cards []Card) string {
	var b strings.Builder
	b.Grow(32)
	fmt.Fprintf(&b, "[")
	for _, c := range cards {
		fmt.Fprintf(&b, " %s ", c.PrettyPrint())
	}
	fmt.Fprintf(&b, "]")
	return b.String()
}
