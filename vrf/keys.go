/*
github.com/tcrain/dleqvrf - Verifiable random functions from discrete-log-equality proofs.
Copyright (C) 2020 The project authors - tcrain

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

*/

package vrf

import (
	"crypto/cipher"
	"io"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/util/random"
	"golang.org/x/crypto/blake2b"

	"github.com/tcrain/dleqvrf/config"
	"github.com/tcrain/dleqvrf/types"
)

///////////////////////////////////////////////////////////////////////////////////////
// Secret keys
///////////////////////////////////////////////////////////////////////////////////////

// SecretKey holds the key scalar and a secret nonce seed. The nonce seed
// feeds deterministic witness generation, domain separated from the key
// itself, so signing stays safe even when the external rng is weak.
// The nonce seed is never part of any serialized public output.
type SecretKey struct {
	key       kyber.Scalar
	nonceSeed [config.NonceSeedBytes]byte
	pub       *PublicKey
}

// NewSecretKeyFromSeed derives a secret key from a 32 byte seed.
// The same seed always yields the same key.
func NewSecretKeyFromSeed(seed []byte) (*SecretKey, error) {
	if len(seed) != config.SeedBytes {
		return nil, types.ErrInvalidSeedSize
	}
	sk := &SecretKey{}
	// the key scalar and the nonce seed use domain separated expansions
	// so neither leaks anything about the other
	keySeed := blake2b.Sum512(appendFrame(nil, "dleqvrf-key", seed))
	sk.key = Suite.Scalar().Pick(Suite.XOF(keySeed[:]))
	nonce := blake2b.Sum512(appendFrame(nil, "dleqvrf-nonce", seed))
	copy(sk.nonceSeed[:], nonce[:config.NonceSeedBytes])
	zeroBytes(keySeed[:])
	zeroBytes(nonce[:])
	sk.pub = newPublicKey(sk.key)
	return sk, nil
}

// GenSecretKey creates a new random secret key from the given stream,
// e.g. random.New().
func GenSecretKey(rng cipher.Stream) *SecretKey {
	sk := &SecretKey{}
	sk.key = Suite.Scalar().Pick(rng)
	random.Bytes(sk.nonceSeed[:], rng)
	sk.pub = newPublicKey(sk.key)
	return sk
}

// GetPub returns the corresponding public key object.
func (sk *SecretKey) GetPub() *PublicKey {
	return sk.pub
}

// MakeInOut evaluates the vrf at the input, pairing it with the
// pre-output key*input.
func (sk *SecretKey) MakeInOut(in *VrfInput) *VrfInOut {
	return &VrfInOut{
		input:  VrfInput{p: in.p},
		preOut: VrfPreOut{p: Suite.Point().Mul(sk.key, in.p)},
	}
}

// Clean erases the key material, best effort. The key must not be used
// afterwards.
func (sk *SecretKey) Clean() {
	if sk.key != nil {
		sk.key.Zero()
	}
	zeroBytes(sk.nonceSeed[:])
}

///////////////////////////////////////////////////////////////////////////////////////
// Public keys
///////////////////////////////////////////////////////////////////////////////////////

// PublicKey is the commitment key*keying_base. It is only ever derived from
// a secret key or decoded from bytes, and is immutable once created.
type PublicKey struct {
	point kyber.Point
}

func newPublicKey(key kyber.Scalar) *PublicKey {
	return &PublicKey{point: Suite.Point().Mul(key, keyingBase())}
}

// Point returns the underlying group element.
func (pub *PublicKey) Point() kyber.Point {
	return pub.point
}

// Equal reports whether two public keys are the same point.
func (pub *PublicKey) Equal(other *PublicKey) bool {
	return pub.point.Equal(other.point)
}

func (pub *PublicKey) Encode(writer io.Writer) (n int, err error) {
	return pointMarshalTo(pub.point, writer)
}

func (pub *PublicKey) Decode(reader io.Reader) (n int, err error) {
	pub.point = Suite.Point()
	return pub.point.UnmarshalFrom(reader)
}

// MarshalBinary returns the canonical encoding of the public key.
func (pub *PublicKey) MarshalBinary() ([]byte, error) {
	return pub.point.MarshalBinary()
}

// UnmarshalBinary decodes a public key from its canonical encoding.
func (pub *PublicKey) UnmarshalBinary(data []byte) error {
	pub.point = Suite.Point()
	if err := pub.point.UnmarshalBinary(data); err != nil {
		return types.ErrInvalidPub
	}
	return nil
}
