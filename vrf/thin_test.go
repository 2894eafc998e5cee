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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.dedis.ch/kyber/v3/util/random"

	"github.com/tcrain/dleqvrf/types"
)

func TestThinSign(t *testing.T) {
	for _, n := range []int{1, 3} {
		SigTestThinRoundTrip(n, t)
	}
}

// With no input/output pairs the thin vrf is a plain Schnorr signature
// over the public key.
func TestThinSchnorrDegenerate(t *testing.T) {
	SigTestThinRoundTrip(0, t)
}

func TestThinCorrupt(t *testing.T) {
	SigTestCorrupt(3, t)
}

func TestThinArityMismatch(t *testing.T) {
	sk := GenSecretKey(random.New())
	defer sk.Clean()
	inputs, ios := MakeTestIOs(sk, 2, t)

	_, err := sk.SignThinVrf(NewTranscript("test"), ios, 3, random.New())
	assert.Equal(t, types.ErrInvalidArity, err)

	sig, err := sk.SignThinVrf(NewTranscript("test"), ios, 2, random.New())
	assert.Nil(t, err)
	_, err = sig.VerifyThinVrf(NewTranscript("test"), inputs[:1], sk.GetPub())
	assert.Equal(t, types.ErrInvalidArity, err)
}

// The verifier must replay the exact append sequence, any transcript
// divergence invalidates the proof.
func TestThinTranscriptMismatch(t *testing.T) {
	sk := GenSecretKey(random.New())
	defer sk.Clean()
	inputs, ios := MakeTestIOs(sk, 1, t)

	tr := NewTranscript("test")
	tr.Append("context", []byte("signer side data"))
	sig, err := sk.SignThinVrf(tr, ios, 1, random.New())
	assert.Nil(t, err)

	// verifier that skips the context append fails
	_, err = sig.VerifyThinVrf(NewTranscript("test"), inputs, sk.GetPub())
	assert.Equal(t, types.ErrInvalidSignature, err)

	// verifier with the identical sequence succeeds
	tv := NewTranscript("test")
	tv.Append("context", []byte("signer side data"))
	_, err = sig.VerifyThinVrf(tv, inputs, sk.GetPub())
	assert.Nil(t, err)
}

// Merging is deterministic, identical transcripts and pairs give identical
// combined pairs.
func TestMergeDeterminism(t *testing.T) {
	sk := GenSecretKey(random.New())
	defer sk.Clean()
	_, ios := MakeTestIOs(sk, 3, t)

	tv := NewThinVrf()
	io1 := tv.thinVrfMerge(NewTranscript("test"), sk.GetPub(), ios)
	io2 := tv.thinVrfMerge(NewTranscript("test"), sk.GetPub(), ios)
	assert.True(t, io1.Input().Point().Equal(io2.Input().Point()))
	assert.True(t, io1.PreOut().Point().Equal(io2.PreOut().Point()))

	// the merged pair still satisfies preout = key*input
	recomputed := sk.MakeInOut(io1.Input())
	assert.True(t, recomputed.PreOut().Point().Equal(io1.PreOut().Point()))

	// with no pairs the key's own pair is returned unchanged
	io0 := tv.thinVrfMerge(NewTranscript("test"), sk.GetPub(), nil)
	assert.True(t, io0.Input().Point().Equal(tv.KeyingBase()))
	assert.True(t, io0.PreOut().Point().Equal(sk.GetPub().Point()))
}

func TestThinSerialize(t *testing.T) {
	sk := GenSecretKey(random.New())
	defer sk.Clean()
	inputs, ios := MakeTestIOs(sk, 2, t)

	sig, err := sk.SignThinVrf(NewTranscript("test"), ios, 2, random.New())
	assert.Nil(t, err)

	var buf bytes.Buffer
	n, err := sig.Encode(&buf)
	assert.Nil(t, err)
	assert.Equal(t, buf.Len(), n)

	sig2 := NewThinVrfSignature(2)
	_, err = sig2.Decode(bytes.NewReader(buf.Bytes()))
	assert.Nil(t, err)

	_, err = sig2.VerifyThinVrf(NewTranscript("test"), inputs, sk.GetPub())
	assert.Nil(t, err)

	// decoding with the wrong arity must fail cleanly
	sig3 := NewThinVrfSignature(3)
	_, err = sig3.Decode(bytes.NewReader(buf.Bytes()))
	assert.NotNil(t, err)
}

// Deterministic signing, same transcript and pairs with no rng give the
// same signature bytes, so a broken rng cannot leak the key through
// repeated witnesses.
func TestThinDeterministicSign(t *testing.T) {
	seed := make([]byte, 32)
	sk, err := NewSecretKeyFromSeed(seed)
	assert.Nil(t, err)
	defer sk.Clean()
	_, ios := MakeTestIOs(sk, 1, t)

	sig1, err := sk.SignThinVrf(NewTranscript("test"), ios, 1, nil)
	assert.Nil(t, err)
	sig2, err := sk.SignThinVrf(NewTranscript("test"), ios, 1, nil)
	assert.Nil(t, err)

	var buf1, buf2 bytes.Buffer
	_, err = sig1.Encode(&buf1)
	assert.Nil(t, err)
	_, err = sig2.Encode(&buf2)
	assert.Nil(t, err)
	assert.Equal(t, buf1.Bytes(), buf2.Bytes())
}
