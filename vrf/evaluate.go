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
	"crypto/cipher"
)

// transcript label for the single input evaluate/verify convenience pair
const evaluateLabel = "EvaluateVrf"

// Evaluate runs the single input thin vrf over a domain separated message,
// for uses like leader election where each node derives one random index
// per message. It returns the 32 output bytes and an encoded proof that
// ProofToHash accepts. rng may be nil for deterministic signing.
func (sk *SecretKey) Evaluate(domain, msg []byte, rng cipher.Stream) (index [32]byte, proof []byte, err error) {
	in, err := NewVrfInput(domain, msg)
	if err != nil {
		return
	}
	io := sk.MakeInOut(in)
	sig, err := sk.SignThinVrf(NewTranscript(evaluateLabel), []*VrfInOut{io}, 1, rng)
	if err != nil {
		return
	}
	var buf bytes.Buffer
	if _, err = sig.Encode(&buf); err != nil {
		return
	}
	return io.MakeBytes(domain), buf.Bytes(), nil
}

// ProofToHash checks an Evaluate proof for the message and returns the
// same 32 output bytes the signer computed.
func (pub *PublicKey) ProofToHash(domain, msg, proof []byte) (index [32]byte, err error) {
	in, err := NewVrfInput(domain, msg)
	if err != nil {
		return
	}
	sig := NewThinVrfSignature(1)
	if _, err = sig.Decode(bytes.NewReader(proof)); err != nil {
		return
	}
	ios, err := sig.VerifyThinVrf(NewTranscript(evaluateLabel), []*VrfInput{in}, pub)
	if err != nil {
		return
	}
	return ios[0].MakeBytes(domain), nil
}
