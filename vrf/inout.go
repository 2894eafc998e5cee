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
	"io"

	"go.dedis.ch/kyber/v3"
	"golang.org/x/crypto/blake2b"

	"github.com/tcrain/dleqvrf/types"
)

///////////////////////////////////////////////////////////////////////////////////////
// Inputs and pre-outputs
///////////////////////////////////////////////////////////////////////////////////////

// VrfInput is the point the vrf is evaluated at.
type VrfInput struct {
	p kyber.Point
}

// Point returns the underlying group element.
func (in *VrfInput) Point() kyber.Point {
	return in.p
}

// VrfPreOut is the vrf result secret_key*input, before hashing into
// output bytes. Only the holder of the matching secret key can compute it.
type VrfPreOut struct {
	p kyber.Point
}

// Point returns the underlying group element.
func (po *VrfPreOut) Point() kyber.Point {
	return po.p
}

func (po *VrfPreOut) Encode(writer io.Writer) (n int, err error) {
	return pointMarshalTo(po.p, writer)
}

func (po *VrfPreOut) Decode(reader io.Reader) (n int, err error) {
	po.p = Suite.Point()
	return po.p.UnmarshalFrom(reader)
}

// VrfInOut pairs an input with the pre-output computed for it under one key.
// A valid pair satisfies preout = key*input, which is exactly the relation
// the signature proves together with pub = key*keying_base.
type VrfInOut struct {
	input  VrfInput
	preOut VrfPreOut
}

// Input returns the input of the pair.
func (io *VrfInOut) Input() *VrfInput {
	return &io.input
}

// PreOut returns the pre-output of the pair.
func (io *VrfInOut) PreOut() *VrfPreOut {
	return &io.preOut
}

// MakeBytes hashes the pair into the final pseudorandom output bytes.
// The context allows different users of the same vrf evaluation to
// extract independent outputs.
func (io *VrfInOut) MakeBytes(context []byte) (out [32]byte) {
	buf := appendFrame(nil, "VrfOutput", context)
	buf = appendFrame(buf, "input", marshalPoint(io.input.p))
	buf = appendFrame(buf, "preoutput", marshalPoint(io.preOut.p))
	return blake2b.Sum256(buf)
}

// attachInOuts zips re-derived inputs with published pre-outputs.
// Both slices must have the same length, checked by the callers.
func attachInOuts(inputs []*VrfInput, preOuts []*VrfPreOut) []*VrfInOut {
	ios := make([]*VrfInOut, len(inputs))
	for i, in := range inputs {
		ios[i] = &VrfInOut{
			input:  VrfInput{p: in.p},
			preOut: VrfPreOut{p: preOuts[i].p},
		}
	}
	return ios
}

// collectPreOuts gathers the pre-outputs that get published with a signature.
func collectPreOuts(ios []*VrfInOut) []*VrfPreOut {
	preOuts := make([]*VrfPreOut, len(ios))
	for i, io := range ios {
		preOuts[i] = &VrfPreOut{p: io.preOut.p}
	}
	return preOuts
}

///////////////////////////////////////////////////////////////////////////////////////
// Delinearization
///////////////////////////////////////////////////////////////////////////////////////

// vrfsMerge folds the key's canonical pair and n additional pairs into a
// single pair by a random linear combination. The key pair keeps an implicit
// coefficient of one, the remaining coefficients are derived from the
// transcript only after every pair has been committed to it (commit first,
// challenge second, otherwise an adaptive signer could pick a relation
// between coefficients). With no additional pairs the key pair is returned
// unchanged and the scheme degenerates into a plain Schnorr signature.
func vrfsMerge(t SigningTranscript, keyIO *VrfInOut, ios []*VrfInOut) *VrfInOut {
	t.AppendInOut("PublicKey", keyIO)
	if len(ios) == 0 {
		return keyIO
	}
	t.AppendU64("IOs", uint64(len(ios)))
	for _, io := range ios {
		t.AppendInOut("VrfInOut", io)
	}
	return vrfsDelinearize(t, keyIO, ios)
}

// vrfsDelinearize computes the linear combination
// sum(c_i*input_i) + keyIO.input and sum(c_i*preout_i) + keyIO.preout
// with one transcript challenge per pair.
func vrfsDelinearize(t SigningTranscript, keyIO *VrfInOut, ios []*VrfInOut) *VrfInOut {
	combIn := keyIO.input.p.Clone()
	combOut := keyIO.preOut.p.Clone()
	for _, io := range ios {
		c := t.Challenge("Delinearize")
		combIn.Add(combIn, Suite.Point().Mul(c, io.input.p))
		combOut.Add(combOut, Suite.Point().Mul(c, io.preOut.p))
	}
	return &VrfInOut{
		input:  VrfInput{p: combIn},
		preOut: VrfPreOut{p: combOut},
	}
}

// pointMarshalTo adapts kyber marshalling to the EncodeInterface signature.
func pointMarshalTo(p kyber.Point, writer io.Writer) (int, error) {
	if p == nil {
		return 0, types.ErrDeserialize
	}
	return p.MarshalTo(writer)
}
