package utils

import (
	"crypto/rand"
	"math/big"
)

const trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateTrackingNumber produit un numéro de suivi au format documenté
// ECO-XXXXXXXXXX (10 caractères alphanumériques majuscules)
func GenerateTrackingNumber() string {
	b := make([]byte, 10)
	max := big.NewInt(int64(len(trackingAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand ne doit jamais échouer en pratique ; on fige
			// un caractère neutre plutôt que de casser le checkout
			b[i] = '0'
			continue
		}
		b[i] = trackingAlphabet[n.Int64()]
	}
	return "ECO-" + string(b)
}
