package signer

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidPublicKey is returned when bytes are not a valid secp256k1
	// point encoding.
	ErrInvalidPublicKey = errors.New("invalid secp256k1 public key")

	// ErrInvalidDigest is returned when a digest is not exactly 32 bytes.
	ErrInvalidDigest = errors.New("digest must be 32 bytes")

	// ErrInvalidSignature is returned when a raw signature is not exactly
	// 64 bytes of r || s.
	ErrInvalidSignature = errors.New("signature must be 64 bytes")

	// ErrRecoveryFailed is returned when neither candidate recovery id
	// reproduces the signer's public key. The signing service and the
	// cached key disagree; the signature must not be used.
	ErrRecoveryFailed = errors.New("no recovery id matches the signer public key")
)
