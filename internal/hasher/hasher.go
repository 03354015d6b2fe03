// Package hasher provides the one-way password digests stored in the
// usuario table.
package hasher

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	AlgMD5    = "md5"
	AlgBcrypt = "bcrypt"
)

type Hasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) bool
}

func New(alg string, bcryptCost int) (Hasher, error) {
	switch alg {
	case AlgMD5, "":
		return MD5{}, nil
	case AlgBcrypt:
		if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
			return nil, fmt.Errorf("hasher: bcrypt cost %d out of range", bcryptCost)
		}
		return Bcrypt{Cost: bcryptCost}, nil
	default:
		return nil, fmt.Errorf("hasher: unknown algorithm %q", alg)
	}
}

// MD5 produces lowercase hex digests, the format already present in the store.
type MD5 struct{}

func (MD5) Hash(password string) (string, error) {
	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

func (m MD5) Compare(hash string, password string) bool {
	computed, _ := m.Hash(password)
	return subtle.ConstantTimeCompare([]byte(hash), []byte(computed)) == 1
}

type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (Bcrypt) Compare(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
