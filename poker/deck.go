package poker

import (
	"context"
)

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// Deck owns an ordered sequence of all 52 cards plus the cards that have
// been popped from it. len(cards) + len(popped) == 52 at all times.
// Shuffle always restores the popped cards first, so a deck can be
// reshuffled with any mix of drawn and undrawn cards.
type Deck struct {
	cards   []Card
	popped  []Card
	entropy Entropy
}

// NewDeck creates an unshuffled full deck. If entropy is nil the deck
// shuffles with crypto/rand.
func NewDeck(entropy Entropy) *Deck {
	if entropy == nil {
		entropy = CryptoEntropy{}
	}
	deck := &Deck{
		cards:   make([]Card, 0, DeckSize),
		popped:  make([]Card, 0, DeckSize),
		entropy: entropy,
	}
	for _, suit := range allSuits {
		for rank := MinRank; rank <= MaxRank; rank++ {
			deck.cards = append(deck.cards, Card{Suit: suit, Rank: rank})
		}
	}
	return deck
}

// Shuffle returns the popped cards to the deck and performs an in-place
// Fisher-Yates permutation. The entropy acquisition is the only point
// where the engine suspends; a failed draw leaves the deck unshuffled
// but whole.
func (deck *Deck) Shuffle(ctx context.Context) error {
	deck.cards = append(deck.cards, deck.popped...)
	deck.popped = deck.popped[:0]

	for i := len(deck.cards) - 1; i > 0; i-- {
		j, err := deck.entropy.Intn(ctx, 0, i)
		if err != nil {
			return err
		}
		deck.cards[i], deck.cards[j] = deck.cards[j], deck.cards[i]
	}
	return nil
}

// Pop moves the top card from the deck onto the popped sequence.
func (deck *Deck) Pop() (Card, error) {
	if len(deck.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := deck.cards[len(deck.cards)-1]
	deck.cards = deck.cards[:len(deck.cards)-1]
	deck.popped = append(deck.popped, card)
	return card, nil
}

// Len reports how many cards remain in the live sequence.
func (deck *Deck) Len() int {
	return len(deck.cards)
}

// PoppedLen reports how many cards have been popped since the last shuffle.
func (deck *Deck) PoppedLen() int {
	return len(deck.popped)
}

func (deck *Deck) PrettyPrint() string {
	return CardsToString(deck.cards)
}
