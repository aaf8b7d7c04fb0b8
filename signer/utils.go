package signer

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// uncompressedPublicKey parses a SEC1 encoded secp256k1 public key
// (compressed or uncompressed) and returns its uncompressed form.
func uncompressedPublicKey(publicKey []byte) ([]byte, error) {
	key, err := btcec.ParsePubKey(publicKey)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPublicKey, "parse public key: %v", err)
	}
	return key.SerializeUncompressed(), nil
}

// AddressForPublicKey returns the Ethereum address for the given SEC1
// encoded secp256k1 public key. Pure and deterministic: the address is the
// last 20 bytes of the keccak256 hash of the uncompressed point without
// its format byte.
func AddressForPublicKey(publicKey []byte) (common.Address, error) {
	uncompressed, err := uncompressedPublicKey(publicKey)
	if err != nil {
		return common.Address{}, err
	}
	hash := crypto.Keccak256(uncompressed[1:])
	return common.BytesToAddress(hash[12:]), nil
}
