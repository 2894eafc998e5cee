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
	"sync"

	"go.dedis.ch/kyber/v3"
)

///////////////////////////////////////////////////////////////////////////////////////
// Protocol flavors
///////////////////////////////////////////////////////////////////////////////////////

// Flavor configures which generators a protocol variant is built on.
// Values of different flavors are never mixed in one proof.
type Flavor interface {
	// KeyingBase is the generator public keys are built on.
	KeyingBase() kyber.Point
}

// ThinVrf is the plain flavor, the raw public key anchors the proof.
type ThinVrf struct {
	keyingBase kyber.Point
}

// NewThinVrf returns the thin flavor over the suite generator.
func NewThinVrf() *ThinVrf {
	return &ThinVrf{keyingBase: keyingBase()}
}

// KeyingBase is the generator public keys are built on.
func (tv *ThinVrf) KeyingBase() kyber.Point {
	return tv.keyingBase
}

// schnorrIO attaches a public key to its base point, forming the key's
// canonical input/pre-output pair for the merge step.
func (tv *ThinVrf) schnorrIO(pub *PublicKey) *VrfInOut {
	return &VrfInOut{
		input:  VrfInput{p: tv.keyingBase.Clone()},
		preOut: VrfPreOut{p: pub.point.Clone()},
	}
}

// PedersenVrf is the blinded flavor, a Pedersen commitment to the key
// stands in for the public key so the signer stays anonymous within a set.
type PedersenVrf struct {
	keyingBase   kyber.Point
	blindingBase kyber.Point
}

// NewPedersenVrf returns the Pedersen flavor over the suite generator and
// the derived blinding base.
func NewPedersenVrf() *PedersenVrf {
	return &PedersenVrf{
		keyingBase:   keyingBase(),
		blindingBase: blindingBase(),
	}
}

// KeyingBase is the generator public keys are built on.
func (pv *PedersenVrf) KeyingBase() kyber.Point {
	return pv.keyingBase
}

// BlindingBase is the second generator key commitments are blinded with.
func (pv *PedersenVrf) BlindingBase() kyber.Point {
	return pv.blindingBase
}

// keyCommitment computes compk = key*keying_base + blinding*blinding_base,
// the Pedersen commitment that replaces the public key inside the proof.
func (pv *PedersenVrf) keyCommitment(key, blinding kyber.Scalar) kyber.Point {
	compk := Suite.Point().Mul(key, pv.keyingBase)
	return compk.Add(compk, Suite.Point().Mul(blinding, pv.blindingBase))
}

// pedersenIO attaches a key commitment to the keying base, forming the
// blinded key pair for the merge step.
func (pv *PedersenVrf) pedersenIO(compk kyber.Point) *VrfInOut {
	return &VrfInOut{
		input:  VrfInput{p: pv.keyingBase.Clone()},
		preOut: VrfPreOut{p: compk.Clone()},
	}
}

func keyingBase() kyber.Point {
	return Suite.Point().Base()
}

var blindingBaseOnce sync.Once
var blindingBasePoint kyber.Point

// blindingBase returns the second generator used by the Pedersen flavor.
// It is sampled uniformly from a fixed transcript over the keying base, so
// nobody knows its discrete log relative to the keying base, which the
// hiding property of the commitment depends on.
func blindingBase() kyber.Point {
	blindingBaseOnce.Do(func() {
		t := NewTranscript("VrfBlindingBase")
		t.AppendPoint("keying-base", keyingBase())
		blindingBasePoint = Suite.Point().Pick(Suite.XOF(t.state))
	})
	return blindingBasePoint.Clone()
}
