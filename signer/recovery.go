package signer

import (
	"bytes"

	btc_ecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// compactSigHeader is the header byte offset for an uncompressed key in
// the btcec compact signature format.
const compactSigHeader = byte(27)

// RecoveryId finds the recovery id (y-parity bit) for a 64-byte r || s
// signature over digest by trial-recovering both candidate ids and
// comparing the recovered key against the known SEC1 public key. The
// signing service does not return a recovery id, so this is the only way
// to complete an Ethereum signature.
//
// Exactly one candidate matches for a signature the service really
// produced with this key; if neither does, the signature is unusable and
// ErrRecoveryFailed is returned rather than a guessed bit.
func RecoveryId(digest, signature, publicKey []byte) (byte, error) {
	if len(digest) != 32 {
		return 0, ErrInvalidDigest
	}
	if len(signature) != 64 {
		return 0, ErrInvalidSignature
	}
	want, err := uncompressedPublicKey(publicKey)
	if err != nil {
		return 0, err
	}

	// The btcec compact format carries the recovery id in a header byte
	// ahead of r and s.
	compact := make([]byte, 65)
	copy(compact[1:], signature)

	for _, candidate := range []byte{0, 1} {
		compact[0] = compactSigHeader + candidate
		recovered, _, err := btc_ecdsa.RecoverCompact(compact, digest)
		if err != nil {
			continue
		}
		if bytes.Equal(recovered.SerializeUncompressed(), want) {
			return candidate, nil
		}
	}

	return 0, ErrRecoveryFailed
}
