package polls

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const linkAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// LinkGenerator returns a new public poll link of the given length.
type LinkGenerator func(length int) (string, error)

// RandomLink draws length characters uniformly from [0-9a-z] using
// crypto/rand.
func RandomLink(length int) (string, error) {
	limit := big.NewInt(int64(len(linkAlphabet)))
	link := make([]byte, length)
	for i := range link {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("could not read random source: %w", err)
		}
		link[i] = linkAlphabet[n.Int64()]
	}

	return string(link), nil
}
