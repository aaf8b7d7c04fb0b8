package canister

import (
	"context"
)

// EcdsaCurve is the curve of a threshold-ECDSA key.
type EcdsaCurve string

const EcdsaCurveSecp256k1 = EcdsaCurve("secp256k1")

// EcdsaKeyId names a threshold-ECDSA master key held by the network.
type EcdsaKeyId struct {
	Curve EcdsaCurve
	Name  string
}

// NewSecp256k1KeyId builds a key id on the secp256k1 curve with the given
// key name.
func NewSecp256k1KeyId(name string) EcdsaKeyId {
	return EcdsaKeyId{Curve: EcdsaCurveSecp256k1, Name: name}
}

type EcdsaPublicKeyArgs struct {
	// CanisterId selects whose key to derive; empty selects the caller.
	CanisterId     string
	DerivationPath [][]byte
	KeyId          EcdsaKeyId
}

type EcdsaPublicKeyResult struct {
	// PublicKey is SEC1 encoded.
	PublicKey []byte
	ChainCode []byte
}

type SignWithEcdsaArgs struct {
	// MessageHash is the 32-byte digest to sign.
	MessageHash    []byte
	DerivationPath [][]byte
	KeyId          EcdsaKeyId
}

type SignWithEcdsaResult struct {
	// Signature is 64 bytes, r || s. The signing service does not return
	// a recovery id.
	Signature []byte
}

// EcdsaCaller invokes the management canister's threshold-ECDSA methods.
// A call-layer rejection is reported as *RejectError.
type EcdsaCaller interface {
	EcdsaPublicKey(ctx context.Context, args EcdsaPublicKeyArgs) (*EcdsaPublicKeyResult, error)
	SignWithEcdsa(ctx context.Context, args SignWithEcdsaArgs) (*SignWithEcdsaResult, error)
}
