package service

import (
	"strings"

	"btc-payment-core/pkg/apperror"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// Extended public key version bytes. The y/z (and u/v) markers carry the
// same key material as x (t) under a different script-type convention.
var (
	versionXpub = []byte{0x04, 0x88, 0xb2, 0x1e}
	versionYpub = []byte{0x04, 0x9d, 0x7c, 0xb2}
	versionZpub = []byte{0x04, 0xb2, 0x47, 0x46}
	versionTpub = []byte{0x04, 0x35, 0x87, 0xcf}
	versionUpub = []byte{0x04, 0x4a, 0x52, 0x62}
	versionVpub = []byte{0x04, 0x5f, 0x1c, 0xf6}
)

// canonicalVersion maps a leading marker to the version bytes of its
// standard form.
var canonicalVersion = map[string][]byte{
	"xpub": versionXpub,
	"ypub": versionXpub,
	"zpub": versionXpub,
	"tpub": versionTpub,
	"upub": versionTpub,
	"vpub": versionTpub,
}

// NormalizeXpub returns the canonical xpub (or tpub on testnet) encoding of a
// watch-only extended key. Standard keys come back trimmed and unchanged;
// alternate markers are re-encoded with the standard version bytes. The
// result does not depend on which marker the input used.
func NormalizeXpub(key string) (string, error) {
	key = strings.TrimSpace(key)
	if len(key) < 4 {
		return "", apperror.ErrKeyFormat("Extended public key is too short")
	}
	marker := key[:4]
	version, ok := canonicalVersion[marker]
	if !ok {
		return "", apperror.ErrKeyFormat("Unrecognized extended key marker " + marker)
	}

	ext, err := hdkeychain.NewKeyFromString(key)
	if err != nil {
		return "", apperror.ErrKeyFormat("Extended public key is malformed")
	}
	if ext.IsPrivate() {
		return "", apperror.ErrKeyFormat("Private extended keys are not accepted")
	}

	if marker == "xpub" || marker == "tpub" {
		return key, nil
	}

	canonical, err := ext.CloneWithVersion(version)
	if err != nil {
		return "", apperror.ErrKeyFormat("Extended public key could not be re-encoded")
	}
	return canonical.String(), nil
}

// derivationKey strips a processor derivation-scheme suffix such as
// "-[p2sh]" or "-[legacy]", leaving the bare extended key.
func derivationKey(scheme string) string {
	if i := strings.Index(scheme, "-"); i >= 0 {
		return scheme[:i]
	}
	return scheme
}
