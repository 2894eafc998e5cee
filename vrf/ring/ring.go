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
/*
This package wires Pedersen vrf signatures to an external ring membership
proof. The Pedersen signer hides its public key behind a blinded commitment,
a ring proof then shows the commitment blinds some key of an authorized set
without revealing which one. The proof system itself is out of scope here
and plugged in through the Prover and Verifier interfaces.
*/
package ring

import (
	"crypto/cipher"
	"io"

	"go.dedis.ch/kyber/v3"

	"github.com/tcrain/dleqvrf/config"
	"github.com/tcrain/dleqvrf/logging"
	"github.com/tcrain/dleqvrf/types"
	"github.com/tcrain/dleqvrf/vrf"
)

// Proof is an opaque ring membership proof, its structure belongs to the
// plugged in proof system.
type Proof []byte

// Prover builds a membership proof for a blinded key commitment. It consumes
// the secret blinding produced by the Pedersen signer, the blinding must not
// leave the prover.
type Prover interface {
	ProveMembership(compk kyber.Point, secretBlinding kyber.Scalar) (Proof, error)
}

// Verifier checks a membership proof against a blinded key commitment.
type Verifier interface {
	VerifyMembership(compk kyber.Point, proof Proof) error
}

// RingVrfSignature is a Pedersen vrf signature extended with the membership
// proof for its key commitment.
type RingVrfSignature struct {
	signature *vrf.PedersenVrfSignature
	proof     Proof
}

// NewRingVrfSignature creates an empty signature of the given arity,
// ready for Decode.
func NewRingVrfSignature(arity int) *RingVrfSignature {
	return &RingVrfSignature{signature: vrf.NewPedersenVrfSignature(arity)}
}

// Signature returns the inner Pedersen vrf signature.
func (rs *RingVrfSignature) Signature() *vrf.PedersenVrfSignature {
	return rs.signature
}

// NumIOs returns the arity the signature was made for.
func (rs *RingVrfSignature) NumIOs() int {
	return rs.signature.NumIOs()
}

func (rs *RingVrfSignature) Encode(writer io.Writer) (n int, err error) {
	if n, err = rs.signature.Encode(writer); err != nil {
		return
	}
	var lenBuf [4]byte
	config.Encoding.PutUint32(lenBuf[:], uint32(len(rs.proof)))
	var nn int
	if nn, err = writer.Write(lenBuf[:]); err != nil {
		return n + nn, err
	}
	n += nn
	nn, err = writer.Write(rs.proof)
	return n + nn, err
}

func (rs *RingVrfSignature) Decode(reader io.Reader) (n int, err error) {
	if n, err = rs.signature.Decode(reader); err != nil {
		return
	}
	var lenBuf [4]byte
	var nn int
	if nn, err = io.ReadFull(reader, lenBuf[:]); err != nil {
		return n + nn, err
	}
	n += nn
	// the length prefix is untrusted, bound it before allocating
	proofLen := config.Encoding.Uint32(lenBuf[:])
	if proofLen > config.MaxRingProofSize {
		return n, types.ErrNotEnoughBytes
	}
	rs.proof = make(Proof, proofLen)
	nn, err = io.ReadFull(reader, rs.proof)
	return n + nn, err
}

// SignRingVrf signs the pairs with the Pedersen flavor and attaches the
// membership proof built by the prover. The secret blinding is erased once
// the prover returns.
func SignRingVrf(prover Prover, sk *vrf.SecretKey, t vrf.SigningTranscript,
	ios []*vrf.VrfInOut, arity int, rng cipher.Stream) (*RingVrfSignature, error) {

	if prover == nil {
		return nil, types.ErrNilRingProver
	}
	sig, blinding, err := sk.SignPedersenVrf(t, ios, arity, rng)
	if err != nil {
		return nil, err
	}
	defer blinding.Zero()
	proof, err := prover.ProveMembership(sig.KeyCommitment(), blinding)
	if err != nil {
		return nil, err
	}
	return &RingVrfSignature{signature: sig, proof: proof}, nil
}

// VerifyRingVrf checks both the vrf signature and the key commitment's
// membership proof, returning the reconstructed pairs on success.
func (rs *RingVrfSignature) VerifyRingVrf(verifier Verifier, t vrf.SigningTranscript,
	inputs []*vrf.VrfInput) ([]*vrf.VrfInOut, error) {

	ios, err := rs.signature.VerifyPedersenVrf(t, inputs)
	if err != nil {
		return nil, err
	}
	if err := verifier.VerifyMembership(rs.signature.KeyCommitment(), rs.proof); err != nil {
		return nil, err
	}
	return ios, nil
}

///////////////////////////////////////////////////////////////////////////////////////
// Test stub
///////////////////////////////////////////////////////////////////////////////////////

// UnsafeNoopRing is a Prover/Verifier that attests nothing, it accepts any
// commitment. Only for tests while a real proof system is plugged in.
type UnsafeNoopRing struct{}

// ProveMembership returns an empty proof without checking anything.
func (UnsafeNoopRing) ProveMembership(kyber.Point, kyber.Scalar) (Proof, error) {
	logging.Warning("Using the no-op ring membership prover, for testing only")
	return Proof{}, nil
}

// VerifyMembership accepts any commitment.
func (UnsafeNoopRing) VerifyMembership(kyber.Point, Proof) error {
	return nil
}
