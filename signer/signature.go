package signer

// Signature is a secp256k1 ECDSA signature completed with its recovery
// id.
type Signature struct {
	R          [32]byte
	S          [32]byte
	RecoveryId byte
}

// newSignature builds a Signature from 64 bytes of r || s and a recovery
// id.
func newSignature(rs []byte, recoveryId byte) (Signature, error) {
	if len(rs) != 64 {
		return Signature{}, ErrInvalidSignature
	}
	sig := Signature{RecoveryId: recoveryId}
	copy(sig.R[:], rs[:32])
	copy(sig.S[:], rs[32:])
	return sig, nil
}

// Bytes returns the 65-byte r || s || v form with v as the y-parity bit.
func (s Signature) Bytes() []byte {
	out := make([]byte, 65)
	copy(out[:32], s.R[:])
	copy(out[32:64], s.S[:])
	out[64] = s.RecoveryId
	return out
}

// V27 returns the recovery id in the legacy 27/28 form.
func (s Signature) V27() byte {
	return s.RecoveryId + 27
}
