package signer

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/openweb3-io/icp-evm/canister"
)

// Signer signs 32-byte digests with a threshold-ECDSA key held by the
// network. No private key material ever exists locally. The public key
// and Ethereum address are derived once at construction and reused for
// every subsequent signing call.
type Signer struct {
	ecdsa          canister.EcdsaCaller
	derivationPath [][]byte
	keyId          canister.EcdsaKeyId
	publicKey      []byte
	address        common.Address
	chainId        uint64
}

// New performs exactly one remote public-key derivation call for the
// named key and derivation path, then derives the Ethereum address
// locally. A call-layer rejection surfaces as *canister.RejectError;
// an invalid point encoding as ErrInvalidPublicKey.
func New(ctx context.Context, caller canister.EcdsaCaller, derivationPath [][]byte, keyName string, chainId uint64) (*Signer, error) {
	keyId := canister.NewSecp256k1KeyId(keyName)

	res, err := caller.EcdsaPublicKey(ctx, canister.EcdsaPublicKeyArgs{
		DerivationPath: derivationPath,
		KeyId:          keyId,
	})
	if err != nil {
		return nil, errors.Wrap(err, "derive public key")
	}

	publicKey, err := uncompressedPublicKey(res.PublicKey)
	if err != nil {
		return nil, err
	}
	address, err := AddressForPublicKey(publicKey)
	if err != nil {
		return nil, err
	}

	zap.S().Debugw("signer created",
		"key", keyName,
		"address", address.Hex(),
	)

	path := make([][]byte, len(derivationPath))
	copy(path, derivationPath)

	return &Signer{
		ecdsa:          caller,
		derivationPath: path,
		keyId:          keyId,
		publicKey:      publicKey,
		address:        address,
		chainId:        chainId,
	}, nil
}

// Sign performs exactly one remote signing call for the digest and
// completes the returned r || s pair with the recovery id found against
// the cached public key. ErrRecoveryFailed means the signing service and
// the cached key are inconsistent and the signature must be discarded.
func (s *Signer) Sign(ctx context.Context, digest []byte) (*Signature, error) {
	if len(digest) != 32 {
		return nil, ErrInvalidDigest
	}

	res, err := s.ecdsa.SignWithEcdsa(ctx, canister.SignWithEcdsaArgs{
		MessageHash:    digest,
		DerivationPath: s.derivationPath,
		KeyId:          s.keyId,
	})
	if err != nil {
		return nil, errors.Wrap(err, "sign with ecdsa")
	}

	recoveryId, err := RecoveryId(digest, res.Signature, s.publicKey)
	if err != nil {
		return nil, err
	}

	sig, err := newSignature(res.Signature, recoveryId)
	if err != nil {
		return nil, err
	}
	return &sig, nil
}

// Address returns the signer's Ethereum address.
func (s *Signer) Address() common.Address {
	return s.address
}

// PublicKey returns the signer's SEC1 uncompressed public key.
func (s *Signer) PublicKey() []byte {
	out := make([]byte, len(s.publicKey))
	copy(out, s.publicKey)
	return out
}

// KeyId returns the threshold key id the signer signs with.
func (s *Signer) KeyId() canister.EcdsaKeyId {
	return s.keyId
}

// DerivationPath returns the signer's derivation path.
func (s *Signer) DerivationPath() [][]byte {
	out := make([][]byte, len(s.derivationPath))
	copy(out, s.derivationPath)
	return out
}

// ChainId returns the chain id the signer is bound to, 0 when unset.
func (s *Signer) ChainId() uint64 {
	return s.chainId
}

// SetChainId rebinds the signer to another chain.
func (s *Signer) SetChainId(chainId uint64) {
	s.chainId = chainId
}
