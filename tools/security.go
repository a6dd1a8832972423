package tools

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"math/big"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// Password hashing (staff/owner accounts).

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}
	return string(b), nil
}

func VerifyPassword(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// Secret code hashing (bookings). O código precisa hashear deterministicamente
// (mesmo code + mesmo salt => mesmo hash), então sha256 com salt de processo,
// não bcrypt.

func HashSecretCode(code, salt string) string {
	sum := sha256.Sum256([]byte(code + salt))
	return hex.EncodeToString(sum[:])
}

// SecretCodeMatches compara o código submetido com o hash armazenado em
// tempo constante, para não vazar informação por timing.
func SecretCodeMatches(submitted, salt, storedHash string) bool {
	computed := HashSecretCode(submitted, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}

// GenerateSecretCode devolve um código de 6 dígitos uniforme em
// [100000, 999999], de fonte criptográfica.
func GenerateSecretCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", errors.Wrap(err, "generate secret code")
	}
	return (new(big.Int).Add(n, big.NewInt(100000))).String(), nil
}
