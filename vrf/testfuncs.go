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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.dedis.ch/kyber/v3/util/random"

	"github.com/tcrain/dleqvrf/types"
)

/////////////////////////////////////////////////////////////////////////////////////////////////////////////////////
// Shared helpers for tests, also used by subpackage tests
///////////////////////////////////////////////////////////////////////////////////////////////////////////////////

var TestDomain = []byte("dleqvrf-test-domain")

// MakeTestIOs derives n test inputs and evaluates them under sk.
func MakeTestIOs(sk *SecretKey, n int, t *testing.T) (inputs []*VrfInput, ios []*VrfInOut) {
	for i := 0; i < n; i++ {
		in, err := NewVrfInput(TestDomain, []byte(fmt.Sprintf("test message %v", i)))
		assert.Nil(t, err)
		inputs = append(inputs, in)
		ios = append(ios, sk.MakeInOut(in))
	}
	return
}

// SigTestThinRoundTrip signs n pairs with the thin flavor and verifies the
// result on an independently built transcript.
func SigTestThinRoundTrip(n int, t *testing.T) {
	sk := GenSecretKey(random.New())
	defer sk.Clean()
	inputs, ios := MakeTestIOs(sk, n, t)

	sig, err := sk.SignThinVrf(NewTranscript("test"), ios, n, random.New())
	assert.Nil(t, err)

	gotIOs, err := sig.VerifyThinVrf(NewTranscript("test"), inputs, sk.GetPub())
	assert.Nil(t, err)
	assert.Equal(t, n, len(gotIOs))
	for i, io := range gotIOs {
		assert.True(t, io.PreOut().Point().Equal(ios[i].PreOut().Point()))
		assert.Equal(t, ios[i].MakeBytes(TestDomain), io.MakeBytes(TestDomain))
	}
}

// SigTestPedersenRoundTrip signs n pairs with the Pedersen flavor and
// verifies against the carried key commitment.
func SigTestPedersenRoundTrip(n int, t *testing.T) {
	sk := GenSecretKey(random.New())
	defer sk.Clean()
	inputs, ios := MakeTestIOs(sk, n, t)

	sig, blinding, err := sk.SignPedersenVrf(NewTranscript("test"), ios, n, random.New())
	assert.Nil(t, err)
	assert.NotNil(t, blinding)
	defer blinding.Zero()
	// the commitment hides the key, it must not equal the raw public key
	assert.False(t, sig.KeyCommitment().Equal(sk.GetPub().Point()))

	gotIOs, err := sig.VerifyPedersenVrf(NewTranscript("test"), inputs)
	assert.Nil(t, err)
	assert.Equal(t, n, len(gotIOs))
	for i, io := range gotIOs {
		assert.True(t, io.PreOut().Point().Equal(ios[i].PreOut().Point()))
	}
}

// SigTestCorrupt checks that corrupted signatures, wrong keys and reordered
// inputs are all rejected for the thin flavor.
func SigTestCorrupt(n int, t *testing.T) {
	sk := GenSecretKey(random.New())
	defer sk.Clean()
	inputs, ios := MakeTestIOs(sk, n, t)

	sig, err := sk.SignThinVrf(NewTranscript("test"), ios, n, random.New())
	assert.Nil(t, err)

	// wrong public key
	other := GenSecretKey(random.New())
	defer other.Clean()
	_, err = sig.VerifyThinVrf(NewTranscript("test"), inputs, other.GetPub())
	assert.Equal(t, types.ErrInvalidSignature, err)

	// reordered inputs
	if n >= 2 {
		swapped := append([]*VrfInput{}, inputs...)
		swapped[0], swapped[1] = swapped[1], swapped[0]
		_, err = sig.VerifyThinVrf(NewTranscript("test"), swapped, sk.GetPub())
		assert.Equal(t, types.ErrInvalidSignature, err)
	}

	// corrupted response scalar
	sig.Corrupt()
	_, err = sig.VerifyThinVrf(NewTranscript("test"), inputs, sk.GetPub())
	assert.Equal(t, types.ErrInvalidSignature, err)
}
