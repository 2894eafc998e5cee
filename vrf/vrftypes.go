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
	"go.dedis.ch/kyber/v3/group/edwards25519"
)

///////////////////////////////////////////////////////////
// Types
//////////////////////////////////////////////////////////

// Suite is the group used by the vrf protocols (this can be changed,
// but sign and verify must agree on it).
var Suite = edwards25519.NewBlakeSHA256Ed25519()

// cofactor of the edwards25519 curve, the full point group is 8 times
// larger than the prime-order subgroup the protocol works in.
var cofactor = Suite.Scalar().SetInt64(8)

// SigningTranscript is the Fiat-Shamir transcript consumed by the sign and
// verify protocols. Challenge and witness values depend on the exact sequence
// and content of the prior appends, so the signer and verifier must perform
// identical append sequences or verification fails. The append ordering is
// part of the protocol, not an implementation detail.
type SigningTranscript interface {
	// Append absorbs a labeled byte string.
	Append(label string, data []byte)
	// AppendU64 absorbs a labeled integer.
	AppendU64(label string, v uint64)
	// AppendPoint absorbs a labeled group element.
	AppendPoint(label string, p kyber.Point)
	// AppendInOut absorbs a labeled input/pre-output pair.
	AppendInOut(label string, io *VrfInOut)
	// Challenge derives a scalar deterministically from all prior appends
	// plus the label.
	Challenge(label string) kyber.Scalar
	// Witness derives an ephemeral scalar from the transcript state, the
	// secret nonce seed, and (optionally) external randomness. It does not
	// modify the transcript state, so signer and verifier states stay in sync.
	Witness(label string, nonceSeed []byte, rng cipher.Stream) kyber.Scalar
	// Witnesses is like Witness but derives count independent scalars.
	Witnesses(label string, count int, nonceSeed []byte, rng cipher.Stream) []kyber.Scalar
}

// EncodeInterface is implemented by public objects that cross the trust
// boundary (public keys, signatures, pre-outputs).
type EncodeInterface interface {
	Encode(writer io.Writer) (n int, err error)
	Decode(reader io.Reader) (n int, err error)
}

///////////////////////////////////////////////////////////
// Cofactor handling
//////////////////////////////////////////////////////////

// equalModCofactor reports whether a and b differ only by an element of the
// small-order subgroup. Point encodings on this curve are not unique up to
// the cofactor, so raw point equality would reject some valid signatures.
func equalModCofactor(a, b kyber.Point) bool {
	ca := Suite.Point().Mul(cofactor, a)
	cb := Suite.Point().Mul(cofactor, b)
	return ca.Equal(cb)
}
