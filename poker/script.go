package poker

// CardsInAscii is a list of card strings, e.g. {"Kh", "Qd"}.
type CardsInAscii []string

// DeckFromScript builds a deck that deals the given hole cards over two
// passes, then the flop, turn and river with a burn card before each
// street. Used by the script runner to play out predetermined hands.
func DeckFromScript(playerCards []CardsInAscii, flop CardsInAscii, turn Card, river Card) *Deck {
	used := make(map[Card]bool)
	holes := make([][]Card, len(playerCards))
	for i, cards := range playerCards {
		holes[i] = make([]Card, len(cards))
		for j, cardStr := range cards {
			card := NewCard(cardStr)
			holes[i][j] = card
			used[card] = true
		}
	}
	flopCards := make([]Card, len(flop))
	for i, cardStr := range flop {
		card := NewCard(cardStr)
		flopCards[i] = card
		used[card] = true
	}
	used[turn] = true
	used[river] = true

	fillers := make([]Card, 0, DeckSize)
	for _, suit := range allSuits {
		for rank := MinRank; rank <= MaxRank; rank++ {
			card := Card{Suit: suit, Rank: rank}
			if !used[card] {
				fillers = append(fillers, card)
			}
		}
	}
	nextFiller := func() Card {
		card := fillers[0]
		fillers = fillers[1:]
		return card
	}

	// The deck pops from the end, so the scripted sequence is laid out
	// in reverse on top of the remaining cards.
	popOrder := make([]Card, 0, DeckSize)
	for pass := 0; pass < 2; pass++ {
		for i := range holes {
			popOrder = append(popOrder, holes[i][pass])
		}
	}
	popOrder = append(popOrder, nextFiller())
	popOrder = append(popOrder, flopCards...)
	popOrder = append(popOrder, nextFiller())
	popOrder = append(popOrder, turn)
	popOrder = append(popOrder, nextFiller())
	popOrder = append(popOrder, river)

	deck := &Deck{
		cards:   make([]Card, 0, DeckSize),
		popped:  make([]Card, 0, DeckSize),
		entropy: CryptoEntropy{},
	}
	deck.cards = append(deck.cards, fillers...)
	for i := len(popOrder) - 1; i >= 0; i-- {
		deck.cards = append(deck.cards, popOrder[i])
	}
	return deck
}
