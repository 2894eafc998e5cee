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
	"testing"

	"github.com/stretchr/testify/assert"
	"go.dedis.ch/kyber/v3/util/random"
)

func TestTranscriptChallengeDeterminism(t *testing.T) {
	t1 := NewTranscript("test")
	t2 := NewTranscript("test")
	for _, tr := range []*Transcript{t1, t2} {
		tr.Append("label", []byte("data"))
		tr.AppendU64("count", 3)
	}
	assert.True(t, t1.Challenge("c").Equal(t2.Challenge("c")))
	// successive challenges under the same label must differ
	assert.False(t, t1.Challenge("c").Equal(t1.Clone().Challenge("d")))
}

func TestTranscriptOrderSensitivity(t *testing.T) {
	t1 := NewTranscript("test")
	t1.Append("a", []byte("x"))
	t1.Append("b", []byte("y"))
	t2 := NewTranscript("test")
	t2.Append("b", []byte("y"))
	t2.Append("a", []byte("x"))
	assert.False(t, t1.Challenge("c").Equal(t2.Challenge("c")))

	// frames must be unambiguous, moving a byte across a boundary changes the state
	t3 := NewTranscript("test")
	t3.Append("a", []byte("xy"))
	t4 := NewTranscript("test")
	t4.Append("ax", []byte("y"))
	assert.False(t, t3.Challenge("c").Equal(t4.Challenge("c")))
}

func TestTranscriptLabelSeparation(t *testing.T) {
	t1 := NewTranscript("proto1")
	t2 := NewTranscript("proto2")
	assert.False(t, t1.Challenge("c").Equal(t2.Challenge("c")))
}

func TestTranscriptWitness(t *testing.T) {
	seed := make([]byte, 32)
	t1 := NewTranscript("test")
	t1.Append("msg", []byte("hello"))

	// deterministic without an rng, and bound to the nonce seed
	w1 := t1.Witness("w", seed, nil)
	w2 := t1.Witness("w", seed, nil)
	assert.True(t, w1.Equal(w2))
	seed2 := make([]byte, 32)
	seed2[0] = 1
	assert.False(t, w1.Equal(t1.Witness("w", seed2, nil)))

	// witness derivation must not disturb the transcript state
	before := t1.Clone().Challenge("c")
	_ = t1.Witness("w", seed, random.New())
	assert.True(t, before.Equal(t1.Challenge("c")))

	// different transcript state gives a different witness even with no rng
	t2 := NewTranscript("test")
	t2.Append("msg", []byte("world"))
	assert.False(t, w1.Equal(t2.Witness("w", seed, nil)))

	// external randomness separates otherwise identical derivations
	t3 := NewTranscript("test")
	t3.Append("msg", []byte("hello"))
	assert.False(t, t3.Witness("w", seed, random.New()).Equal(
		t3.Witness("w", seed, random.New())))
}

func TestTranscriptWitnesses(t *testing.T) {
	seed := make([]byte, 32)
	tr := NewTranscript("test")
	ws := tr.Witnesses("w", 2, seed, nil)
	assert.Equal(t, 2, len(ws))
	assert.False(t, ws[0].Equal(ws[1]))
}
