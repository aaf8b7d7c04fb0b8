package signer_test

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/openweb3-io/icp-evm/signer"
)

func TestRecoveryIdMatchesReferenceSigner(t *testing.T) {
	for i := 0; i < 16; i++ {
		key, err := crypto.GenerateKey()
		require.NoError(t, err)

		digest := crypto.Keccak256([]byte(fmt.Sprintf("payload %d", i)))
		refSig, err := crypto.Sign(digest, key)
		require.NoError(t, err)

		publicKey := crypto.FromECDSAPub(&key.PublicKey)
		recoveryId, err := signer.RecoveryId(digest, refSig[:64], publicKey)
		require.NoError(t, err)
		require.Equal(t, refSig[64], recoveryId)
	}
}

func TestRecoveryIdCompressedKey(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	digest := crypto.Keccak256([]byte("compressed"))
	refSig, err := crypto.Sign(digest, key)
	require.NoError(t, err)

	compressed := crypto.CompressPubkey(&key.PublicKey)
	recoveryId, err := signer.RecoveryId(digest, refSig[:64], compressed)
	require.NoError(t, err)
	require.Equal(t, refSig[64], recoveryId)
}

func TestRecoveryIdMismatchedKey(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	other, err := crypto.GenerateKey()
	require.NoError(t, err)

	digest := crypto.Keccak256([]byte("payload"))
	refSig, err := crypto.Sign(digest, key)
	require.NoError(t, err)

	_, err = signer.RecoveryId(digest, refSig[:64], crypto.FromECDSAPub(&other.PublicKey))
	require.ErrorIs(t, err, signer.ErrRecoveryFailed)
}

func TestRecoveryIdInvalidInputs(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	publicKey := crypto.FromECDSAPub(&key.PublicKey)

	digest := crypto.Keccak256([]byte("payload"))
	refSig, err := crypto.Sign(digest, key)
	require.NoError(t, err)

	_, err = signer.RecoveryId(digest[:16], refSig[:64], publicKey)
	require.ErrorIs(t, err, signer.ErrInvalidDigest)

	_, err = signer.RecoveryId(digest, refSig, publicKey)
	require.ErrorIs(t, err, signer.ErrInvalidSignature)

	_, err = signer.RecoveryId(digest, refSig[:64], []byte{0x04, 0x01})
	require.ErrorIs(t, err, signer.ErrInvalidPublicKey)
}

func TestAddressForPublicKey(t *testing.T) {
	// Public key of the secp256k1 generator point, i.e. private key 1.
	publicKey, err := hex.DecodeString("0479BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")
	require.NoError(t, err)

	address, err := signer.AddressForPublicKey(publicKey)
	require.NoError(t, err)
	require.Equal(t, "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf", address.Hex())

	again, err := signer.AddressForPublicKey(publicKey)
	require.NoError(t, err)
	require.Equal(t, address, again)

	// The compressed encoding of the same point derives the same address.
	compressed, err := hex.DecodeString("0279BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	require.NoError(t, err)
	fromCompressed, err := signer.AddressForPublicKey(compressed)
	require.NoError(t, err)
	require.Equal(t, address, fromCompressed)
}

func TestAddressForPublicKeyAgainstReference(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	address, err := signer.AddressForPublicKey(crypto.FromECDSAPub(&key.PublicKey))
	require.NoError(t, err)
	require.Equal(t, crypto.PubkeyToAddress(key.PublicKey), address)
}

func TestAddressForPublicKeyRejectsGarbage(t *testing.T) {
	_, err := signer.AddressForPublicKey([]byte{0x04, 0xde, 0xad})
	require.ErrorIs(t, err, signer.ErrInvalidPublicKey)
}
