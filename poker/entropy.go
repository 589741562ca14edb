package poker

import (
	"context"
	crypto_rand "crypto/rand"
	"math/big"

	"github.com/pkg/errors"
)

// Entropy supplies uniformly distributed random integers for deck
// shuffling. Both bounds are inclusive. Implementations must be
// cryptographically secure; a failed draw aborts the shuffle in progress.
type Entropy interface {
	Intn(ctx context.Context, low int, high int) (int, error)
}

// CryptoEntropy draws from crypto/rand.
type CryptoEntropy struct{}

func (CryptoEntropy) Intn(ctx context.Context, low int, high int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.Wrap(err, "entropy source interrupted")
	}
	nBig, err := crypto_rand.Int(crypto_rand.Reader, big.NewInt(int64(high-low+1)))
	if err != nil {
		return 0, errors.Wrap(err, "cannot read from cryptographically secure random number generator")
	}
	return low + int(nBig.Int64()), nil
}
