package service

import (
	"bytes"
	"testing"

	"btc-payment-core/pkg/apperror"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// watchOnlyKeys derives one account key and encodes it under every marker
// for the given network.
func watchOnlyKeys(t *testing.T, params *chaincfg.Params, versions ...[]byte) []string {
	t.Helper()
	seed := bytes.Repeat([]byte{0x5a}, hdkeychain.RecommendedSeedLen)
	master, err := hdkeychain.NewMaster(seed, params)
	require.NoError(t, err)
	account, err := master.Derive(hdkeychain.HardenedKeyStart + 84)
	require.NoError(t, err)
	pub, err := account.Neuter()
	require.NoError(t, err)

	keys := make([]string, 0, len(versions))
	for _, v := range versions {
		k, err := pub.CloneWithVersion(v)
		require.NoError(t, err)
		keys = append(keys, k.String())
	}
	return keys
}

func TestNormalizeXpub_MainnetMarkersAgree(t *testing.T) {
	keys := watchOnlyKeys(t, &chaincfg.MainNetParams, versionXpub, versionYpub, versionZpub)
	require.Equal(t, "xpub", keys[0][:4])
	require.Equal(t, "ypub", keys[1][:4])
	require.Equal(t, "zpub", keys[2][:4])

	for _, k := range keys {
		got, err := NormalizeXpub(k)
		require.NoError(t, err, k)
		assert.Equal(t, keys[0], got)
	}
}

func TestNormalizeXpub_TestnetMarkersAgree(t *testing.T) {
	keys := watchOnlyKeys(t, &chaincfg.TestNet3Params, versionTpub, versionUpub, versionVpub)
	require.Equal(t, "tpub", keys[0][:4])
	require.Equal(t, "upub", keys[1][:4])
	require.Equal(t, "vpub", keys[2][:4])

	for _, k := range keys {
		got, err := NormalizeXpub(k)
		require.NoError(t, err, k)
		assert.Equal(t, keys[0], got)
	}
}

func TestNormalizeXpub_Idempotent(t *testing.T) {
	keys := watchOnlyKeys(t, &chaincfg.MainNetParams, versionZpub)

	once, err := NormalizeXpub(keys[0])
	require.NoError(t, err)
	twice, err := NormalizeXpub(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestNormalizeXpub_TrimsWhitespace(t *testing.T) {
	keys := watchOnlyKeys(t, &chaincfg.MainNetParams, versionXpub)

	got, err := NormalizeXpub("  " + keys[0] + "\n")
	require.NoError(t, err)
	assert.Equal(t, keys[0], got)
}

func TestNormalizeXpub_Rejects(t *testing.T) {
	xpub := watchOnlyKeys(t, &chaincfg.MainNetParams, versionXpub)[0]

	seed := bytes.Repeat([]byte{0x5a}, hdkeychain.RecommendedSeedLen)
	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	require.NoError(t, err)

	// Flip the last checksum character.
	last := xpub[len(xpub)-1]
	swap := byte('a')
	if last == 'a' {
		swap = 'b'
	}
	badChecksum := xpub[:len(xpub)-1] + string(swap)

	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"short", "xpu"},
		{"private key", master.String()},
		{"unknown marker", "Ltub" + xpub[4:]},
		{"bad checksum", badChecksum},
		{"garbage", "zpub-not-a-key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeXpub(tt.key)
			require.Error(t, err)
			assert.True(t, apperror.HasCode(err, apperror.CodeKeyFormat), err.Error())
		})
	}
}

func TestDerivationKey(t *testing.T) {
	assert.Equal(t, "xpubABC", derivationKey("xpubABC"))
	assert.Equal(t, "xpubABC", derivationKey("xpubABC-[p2sh]"))
	assert.Equal(t, "xpubABC", derivationKey("xpubABC-[legacy]"))
}
