package poker

import "github.com/pkg/errors"

// ErrEmptyDeck is returned when a card is popped from an exhausted deck.
// With table sizes bounded well below 52/2 seats this should never occur
// during a hand.
var ErrEmptyDeck = errors.New("no cards remain in the deck")
