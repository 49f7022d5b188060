package auth

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"

	"github.com/echart-dentnu/echart-api/internal/core/ports"
)

// Hash scheme names accepted in AUTH_HASH_SCHEME.
const (
	SchemeMD5    = "md5"
	SchemeBcrypt = "bcrypt"
)

// MD5Hasher reproduces the legacy digest scheme: lowercase hex MD5 of the
// plaintext, no salt. It is byte-compatible with the digests already stored
// in the hospital user table, which is the only reason it exists; the
// scheme is a known weakness (unsalted fast digest) and deployments without
// legacy data should select bcrypt instead.
type MD5Hasher struct{}

func (MD5Hasher) Hash(plaintext string) (string, error) {
	sum := md5.Sum([]byte(plaintext))
	return hex.EncodeToString(sum[:]), nil
}

func (h MD5Hasher) Verify(plaintext, digest string) bool {
	candidate, _ := h.Hash(plaintext)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(digest)) == 1
}

// BcryptHasher is the salted, slow replacement scheme for fresh deployments.
type BcryptHasher struct{}

func (BcryptHasher) Hash(plaintext string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// NewHasher selects a hasher by scheme name. Unknown schemes fall back to
// the legacy MD5 scheme so that existing deployments keep verifying.
func NewHasher(scheme string) ports.PasswordHasher {
	if scheme == SchemeBcrypt {
		return BcryptHasher{}
	}
	return MD5Hasher{}
}
