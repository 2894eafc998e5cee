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
// Pedersen vrf signatures
///////////////////////////////////////////////////////////////////////////////////////

// PedersenVrfSignature proves the same relations as a thin vrf signature
// but against a blinded key commitment compk = key*G + b*B instead of the
// raw public key, so the signer is hidden within the set of keys some
// external ring membership proof vouches for. The blinded relation has two
// secret exponents, hence the response pair (s, sb).
type PedersenVrfSignature struct {
	compk   kyber.Point
	r       kyber.Point
	s       kyber.Scalar
	sb      kyber.Scalar
	preOuts []*VrfPreOut
}

// NewPedersenVrfSignature creates an empty signature of the given arity,
// ready for Decode.
func NewPedersenVrfSignature(arity int) *PedersenVrfSignature {
	preOuts := make([]*VrfPreOut, arity)
	for i := range preOuts {
		preOuts[i] = &VrfPreOut{}
	}
	return &PedersenVrfSignature{preOuts: preOuts}
}

// NumIOs returns the arity the signature was made for.
func (sig *PedersenVrfSignature) NumIOs() int {
	return len(sig.preOuts)
}

// PreOuts returns the published pre-outputs.
func (sig *PedersenVrfSignature) PreOuts() []*VrfPreOut {
	return sig.preOuts
}

// KeyCommitment returns the blinded key commitment the proof is anchored
// on. A ring membership verifier checks this commitment against the
// authorized key set, the vrf verification itself only proves internal
// consistency with some committed key.
func (sig *PedersenVrfSignature) KeyCommitment() kyber.Point {
	return sig.compk
}

// Corrupt invalidates the signature for testing.
func (sig *PedersenVrfSignature) Corrupt() {
	sig.s.Add(sig.s, Suite.Scalar().One())
}

func (sig *PedersenVrfSignature) Encode(writer io.Writer) (n int, err error) {
	var nn int
	for _, p := range []kyber.Point{sig.compk, sig.r} {
		if nn, err = pointMarshalTo(p, writer); err != nil {
			return n + nn, err
		}
		n += nn
	}
	for _, s := range []kyber.Scalar{sig.s, sig.sb} {
		if nn, err = s.MarshalTo(writer); err != nil {
			return n + nn, err
		}
		n += nn
	}
	for _, po := range sig.preOuts {
		if nn, err = po.Encode(writer); err != nil {
			return n + nn, err
		}
		n += nn
	}
	return
}

func (sig *PedersenVrfSignature) Decode(reader io.Reader) (n int, err error) {
	var nn int
	sig.compk = Suite.Point()
	sig.r = Suite.Point()
	for _, p := range []kyber.Point{sig.compk, sig.r} {
		if nn, err = p.UnmarshalFrom(reader); err != nil {
			return n + nn, err
		}
		n += nn
	}
	sig.s = Suite.Scalar()
	sig.sb = Suite.Scalar()
	for _, s := range []kyber.Scalar{sig.s, sig.sb} {
		if nn, err = s.UnmarshalFrom(reader); err != nil {
			return n + nn, err
		}
		n += nn
	}
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

// SignPedersenVrf signs the input/pre-output pairs against a fresh blinded
// key commitment. It returns the signature together with the secret
// blinding scalar, which a ring membership prover consumes to show the
// commitment blinds some authorized key. The caller owns the blinding and
// must erase it (Zero) once the ring proof is built, it must never reach a
// verifier. arity behaves as in SignThinVrf.
func (sk *SecretKey) SignPedersenVrf(t SigningTranscript, ios []*VrfInOut, arity int,
	rng cipher.Stream) (*PedersenVrfSignature, kyber.Scalar, error) {

	if sk == nil || sk.key == nil {
		return nil, nil, types.ErrNilPriv
	}
	if len(ios) != arity {
		return nil, nil, types.ErrInvalidArity
	}
	pv := NewPedersenVrf()

	// the blinding goes through the witness machinery too, a weak rng
	// alone must not reveal the signer
	b := t.Witness("MakeBlinding", sk.nonceSeed[:], rng)
	compk := pv.keyCommitment(sk.key, b)

	io := vrfsMerge(t, pv.pedersenIO(compk), ios)

	ks := t.Witnesses("MakeWitness", 2, sk.nonceSeed[:], rng)
	k, kb := ks[0], ks[1]
	defer k.Zero()
	defer kb.Zero()
	r := Suite.Point().Mul(k, io.input.p)
	r.Add(r, Suite.Point().Mul(kb, pv.blindingBase))

	t.AppendPoint("Witness", r)
	c := t.Challenge("PedersenVrfChallenge")

	s := Suite.Scalar().Mul(c, sk.key)
	s.Add(s, k)
	sb := Suite.Scalar().Mul(c, b)
	sb.Add(sb, kb)

	sig := &PedersenVrfSignature{
		compk:   compk,
		r:       r,
		s:       s,
		sb:      sb,
		preOuts: collectPreOuts(ios),
	}
	return sig, b, nil
}

///////////////////////////////////////////////////////////////////////////////////////
// Verify
///////////////////////////////////////////////////////////////////////////////////////

// VerifyPedersenVrf checks the signature against the re-derived inputs and
// the key commitment carried inside it. It does not check that the
// commitment blinds an authorized key, that is the ring membership
// verifier's job. On success it returns the reconstructed pairs.
func (sig *PedersenVrfSignature) VerifyPedersenVrf(t SigningTranscript,
	inputs []*VrfInput) ([]*VrfInOut, error) {

	if sig.compk == nil {
		return nil, types.ErrInvalidPub
	}
	if len(inputs) != len(sig.preOuts) {
		return nil, types.ErrInvalidArity
	}
	ios := attachInOuts(inputs, sig.preOuts)

	pv := NewPedersenVrf()
	io := vrfsMerge(t, pv.pedersenIO(sig.compk), ios)

	t.AppendPoint("Witness", sig.r)
	c := t.Challenge("PedersenVrfChallenge")

	// s*input + sb*B == r + c*preout, up to the small order subgroup
	lhs := Suite.Point().Mul(sig.s, io.input.p)
	lhs.Add(lhs, Suite.Point().Mul(sig.sb, pv.blindingBase))
	rhs := Suite.Point().Mul(c, io.preOut.p)
	rhs.Add(rhs, sig.r)
	if !equalModCofactor(lhs, rhs) {
		return nil, types.ErrInvalidSignature
	}
	return ios, nil
}
