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

func TestPedersenSign(t *testing.T) {
	for _, n := range []int{0, 1, 3} {
		SigTestPedersenRoundTrip(n, t)
	}
}

// Two signatures over the same key and inputs but different blindings give
// different key commitments, yet both verify.
func TestPedersenBlinding(t *testing.T) {
	sk := GenSecretKey(random.New())
	defer sk.Clean()
	inputs, ios := MakeTestIOs(sk, 2, t)

	sig1, b1, err := sk.SignPedersenVrf(NewTranscript("test"), ios, 2, random.New())
	assert.Nil(t, err)
	defer b1.Zero()
	sig2, b2, err := sk.SignPedersenVrf(NewTranscript("test"), ios, 2, random.New())
	assert.Nil(t, err)
	defer b2.Zero()

	assert.False(t, b1.Equal(b2))
	assert.False(t, sig1.KeyCommitment().Equal(sig2.KeyCommitment()))

	_, err = sig1.VerifyPedersenVrf(NewTranscript("test"), inputs)
	assert.Nil(t, err)
	_, err = sig2.VerifyPedersenVrf(NewTranscript("test"), inputs)
	assert.Nil(t, err)

	// both commit to the same key
	pv := NewPedersenVrf()
	diff := Suite.Point().Sub(sig1.KeyCommitment(), sig2.KeyCommitment())
	bDiff := Suite.Scalar().Sub(b1, b2)
	assert.True(t, diff.Equal(Suite.Point().Mul(bDiff, pv.BlindingBase())))
}

func TestPedersenCorrupt(t *testing.T) {
	sk := GenSecretKey(random.New())
	defer sk.Clean()
	inputs, ios := MakeTestIOs(sk, 2, t)

	sig, b, err := sk.SignPedersenVrf(NewTranscript("test"), ios, 2, random.New())
	assert.Nil(t, err)
	defer b.Zero()

	sig.Corrupt()
	_, err = sig.VerifyPedersenVrf(NewTranscript("test"), inputs)
	assert.Equal(t, types.ErrInvalidSignature, err)
}

func TestPedersenArityMismatch(t *testing.T) {
	sk := GenSecretKey(random.New())
	defer sk.Clean()
	_, ios := MakeTestIOs(sk, 2, t)

	_, _, err := sk.SignPedersenVrf(NewTranscript("test"), ios, 1, random.New())
	assert.Equal(t, types.ErrInvalidArity, err)
}

func TestPedersenSerialize(t *testing.T) {
	sk := GenSecretKey(random.New())
	defer sk.Clean()
	inputs, ios := MakeTestIOs(sk, 1, t)

	sig, b, err := sk.SignPedersenVrf(NewTranscript("test"), ios, 1, random.New())
	assert.Nil(t, err)
	defer b.Zero()

	var buf bytes.Buffer
	n, err := sig.Encode(&buf)
	assert.Nil(t, err)
	assert.Equal(t, buf.Len(), n)

	sig2 := NewPedersenVrfSignature(1)
	_, err = sig2.Decode(bytes.NewReader(buf.Bytes()))
	assert.Nil(t, err)
	_, err = sig2.VerifyPedersenVrf(NewTranscript("test"), inputs)
	assert.Nil(t, err)
}
