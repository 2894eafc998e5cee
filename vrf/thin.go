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

	"github.com/tcrain/dleqvrf/types"
)

///////////////////////////////////////////////////////////////////////////////////////
// Thin vrf signatures
///////////////////////////////////////////////////////////////////////////////////////

// ThinVrfSignature is a Schnorr style signature over the signer's public key
// and a fixed number of input/pre-output pairs. The pre-outputs travel with
// the signature, they are the published vrf results.
type ThinVrfSignature struct {
	r       kyber.Point
	s       kyber.Scalar
	preOuts []*VrfPreOut
}

// NewThinVrfSignature creates an empty signature of the given arity,
// ready for Decode.
func NewThinVrfSignature(arity int) *ThinVrfSignature {
	preOuts := make([]*VrfPreOut, arity)
	for i := range preOuts {
		preOuts[i] = &VrfPreOut{}
	}
	return &ThinVrfSignature{preOuts: preOuts}
}

// NumIOs returns the arity the signature was made for.
func (sig *ThinVrfSignature) NumIOs() int {
	return len(sig.preOuts)
}

// PreOuts returns the published pre-outputs.
func (sig *ThinVrfSignature) PreOuts() []*VrfPreOut {
	return sig.preOuts
}

// Corrupt invalidates the signature for testing.
func (sig *ThinVrfSignature) Corrupt() {
	sig.s.Add(sig.s, Suite.Scalar().One())
}

func (sig *ThinVrfSignature) Encode(writer io.Writer) (n int, err error) {
	if n, err = pointMarshalTo(sig.r, writer); err != nil {
		return
	}
	var nn int
	if nn, err = sig.s.MarshalTo(writer); err != nil {
		return n + nn, err
	}
	n += nn
	for _, po := range sig.preOuts {
		if nn, err = po.Encode(writer); err != nil {
			return n + nn, err
		}
		n += nn
	}
	return
}

func (sig *ThinVrfSignature) Decode(reader io.Reader) (n int, err error) {
	sig.r = Suite.Point()
	if n, err = sig.r.UnmarshalFrom(reader); err != nil {
		return
	}
	sig.s = Suite.Scalar()
	var nn int
	if nn, err = sig.s.UnmarshalFrom(reader); err != nil {
		return n + nn, err
	}
	n += nn
	for _, po := range sig.preOuts {
		if nn, err = po.Decode(reader); err != nil {
			return n + nn, err
		}
		n += nn
	}
	return
}

///////////////////////////////////////////////////////////////////////////////////////
// Sign
///////////////////////////////////////////////////////////////////////////////////////

// thinVrfMerge appends the public key pair and folds it with the supplied
// pairs into the single pair the Schnorr arithmetic runs over.
func (tv *ThinVrf) thinVrfMerge(t SigningTranscript, pub *PublicKey, ios []*VrfInOut) *VrfInOut {
	return vrfsMerge(t, tv.schnorrIO(pub), ios)
}

// SignThinVrf signs the input/pre-output pairs with a thin vrf signature.
// arity declares the pair count fixed by the signature, supplying a
// different number of pairs fails with ErrInvalidArity before any group
// operation. With arity zero this is a plain Schnorr signature over the
// public key. rng may be nil, signing is then deterministic via the
// secret nonce seed.
func (sk *SecretKey) SignThinVrf(t SigningTranscript, ios []*VrfInOut, arity int,
	rng cipher.Stream) (*ThinVrfSignature, error) {

	if sk == nil || sk.key == nil {
		return nil, types.ErrNilPriv
	}
	if len(ios) != arity {
		return nil, types.ErrInvalidArity
	}
	tv := NewThinVrf()
	io := tv.thinVrfMerge(t, sk.pub, ios)

	// constructing the witness late keeps it bound to the whole transcript
	k := t.Witness("MakeWitness", sk.nonceSeed[:], rng)
	defer k.Zero()
	r := Suite.Point().Mul(k, io.input.p)

	t.AppendPoint("Witness", r)
	c := t.Challenge("ThinVrfChallenge")

	s := Suite.Scalar().Mul(c, sk.key)
	s.Add(s, k)

	return &ThinVrfSignature{
		r:       r,
		s:       s,
		preOuts: collectPreOuts(ios),
	}, nil
}

///////////////////////////////////////////////////////////////////////////////////////
// Verify
///////////////////////////////////////////////////////////////////////////////////////

// VerifyThinVrf checks the signature against the re-derived inputs and the
// signer's public key, replaying the exact transcript sequence of the
// signer. On success it returns the reconstructed input/pre-output pairs,
// whose pre-outputs the caller hashes into output bytes via MakeBytes.
func (sig *ThinVrfSignature) VerifyThinVrf(t SigningTranscript, inputs []*VrfInput,
	pub *PublicKey) ([]*VrfInOut, error) {

	if pub == nil || pub.point == nil {
		return nil, types.ErrInvalidPub
	}
	if len(inputs) != len(sig.preOuts) {
		return nil, types.ErrInvalidArity
	}
	ios := attachInOuts(inputs, sig.preOuts)

	tv := NewThinVrf()
	io := tv.thinVrfMerge(t, pub, ios)

	t.AppendPoint("Witness", sig.r)
	c := t.Challenge("ThinVrfChallenge")

	// s*input == r + c*preout, up to the small order subgroup
	lhs := Suite.Point().Mul(sig.s, io.input.p)
	rhs := Suite.Point().Mul(c, io.preOut.p)
	rhs.Add(rhs, sig.r)
	if !equalModCofactor(lhs, rhs) {
		return nil, types.ErrInvalidSignature
	}
	return ios, nil
}
