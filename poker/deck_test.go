package poker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardSet(deck *Deck) map[Card]int {
	set := make(map[Card]int)
	for _, card := range deck.cards {
		set[card]++
	}
	return set
}

func TestNewDeckHas52UniqueCards(t *testing.T) {
	deck := NewDeck(nil)
	assert.Equal(t, DeckSize, deck.Len())
	set := cardSet(deck)
	assert.Equal(t, DeckSize, len(set))
	for card, count := range set {
		assert.Equalf(t, 1, count, "card %s appears %d times", card.String(), count)
	}
}

func TestShuffleIsAPermutation(t *testing.T) {
	deck := NewDeck(nil)
	before := cardSet(deck)

	err := deck.Shuffle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, DeckSize, deck.Len())
	assert.Equal(t, before, cardSet(deck))
}

func TestShuffleRestoresPoppedCards(t *testing.T) {
	deck := NewDeck(nil)
	for i := 0; i < 17; i++ {
		_, err := deck.Pop()
		require.NoError(t, err)
	}
	assert.Equal(t, DeckSize-17, deck.Len())
	assert.Equal(t, 17, deck.PoppedLen())

	err := deck.Shuffle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DeckSize, deck.Len())
	assert.Equal(t, 0, deck.PoppedLen())
	assert.Equal(t, DeckSize, len(cardSet(deck)))
}

func TestPopMaintainsDeckInvariant(t *testing.T) {
	deck := NewDeck(nil)
	for i := 0; i < DeckSize; i++ {
		_, err := deck.Pop()
		require.NoError(t, err)
		assert.Equal(t, DeckSize, deck.Len()+deck.PoppedLen())
	}

	_, err := deck.Pop()
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestDeckFromScript(t *testing.T) {
	player1 := CardsInAscii{"Kh", "Qd"}
	player2 := CardsInAscii{"3s", "7s"}
	flop := CardsInAscii{"Ac", "Ad", "2c"}
	turn := NewCard("Td")
	river := NewCard("4s")

	deck := DeckFromScript([]CardsInAscii{player1, player2}, flop, turn, river)
	assert.Equal(t, DeckSize, deck.Len())
	assert.Equal(t, DeckSize, len(cardSet(deck)))

	pop := func() Card {
		card, err := deck.Pop()
		require.NoError(t, err)
		return card
	}

	// Hole cards go out one card per pass.
	assert.Equal(t, NewCard("Kh"), pop())
	assert.Equal(t, NewCard("3s"), pop())
	assert.Equal(t, NewCard("Qd"), pop())
	assert.Equal(t, NewCard("7s"), pop())

	pop() // burn
	assert.Equal(t, NewCard("Ac"), pop())
	assert.Equal(t, NewCard("Ad"), pop())
	assert.Equal(t, NewCard("2c"), pop())
	pop() // burn
	assert.Equal(t, turn, pop())
	pop() // burn
	assert.Equal(t, river, pop())
}
