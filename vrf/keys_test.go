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

func TestKeyFromSeed(t *testing.T) {
	seed := make([]byte, 32)
	copy(seed, "some fixed seed")

	sk1, err := NewSecretKeyFromSeed(seed)
	assert.Nil(t, err)
	defer sk1.Clean()
	sk2, err := NewSecretKeyFromSeed(seed)
	assert.Nil(t, err)
	defer sk2.Clean()
	assert.True(t, sk1.GetPub().Equal(sk2.GetPub()))

	seed[0] ^= 1
	sk3, err := NewSecretKeyFromSeed(seed)
	assert.Nil(t, err)
	defer sk3.Clean()
	assert.False(t, sk1.GetPub().Equal(sk3.GetPub()))

	_, err = NewSecretKeyFromSeed(seed[:16])
	assert.Equal(t, types.ErrInvalidSeedSize, err)
}

func TestPubSerialize(t *testing.T) {
	sk := GenSecretKey(random.New())
	defer sk.Clean()
	pub := sk.GetPub()

	var buf bytes.Buffer
	_, err := pub.Encode(&buf)
	assert.Nil(t, err)

	pub2 := &PublicKey{}
	_, err = pub2.Decode(&buf)
	assert.Nil(t, err)
	assert.True(t, pub.Equal(pub2))

	byt, err := pub.MarshalBinary()
	assert.Nil(t, err)
	pub3 := &PublicKey{}
	assert.Nil(t, pub3.UnmarshalBinary(byt))
	assert.True(t, pub.Equal(pub3))

	assert.NotNil(t, pub3.UnmarshalBinary([]byte("short")))
}

func TestMakeInOut(t *testing.T) {
	sk := GenSecretKey(random.New())
	defer sk.Clean()
	in, err := NewVrfInput(TestDomain, []byte("message"))
	assert.Nil(t, err)

	io := sk.MakeInOut(in)
	// nobody else can recompute the pre-output
	other := GenSecretKey(random.New())
	defer other.Clean()
	assert.False(t, io.PreOut().Point().Equal(other.MakeInOut(in).PreOut().Point()))
	// output bytes are context separated
	assert.NotEqual(t, io.MakeBytes([]byte("ctx1")), io.MakeBytes([]byte("ctx2")))
}
