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
	"encoding/binary"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/util/random"
	"golang.org/x/crypto/blake2b"

	"github.com/tcrain/dleqvrf/config"
)

// protocol version tag mixed into every transcript
const transcriptProto = "dleqvrf-v1"

// Transcript is the concrete SigningTranscript. It accumulates every
// append as a length-prefixed frame and derives challenge scalars by
// running the suite XOF over the accumulated state. Challenge operations
// are themselves recorded as frames, so successive challenges under the
// same label yield independent scalars.
type Transcript struct {
	state []byte
}

// NewTranscript creates a transcript domain separated by the protocol label.
func NewTranscript(label string) *Transcript {
	t := &Transcript{}
	t.appendFrame(transcriptProto, []byte(label))
	return t
}

// Clone returns an independent copy of the transcript state.
func (t *Transcript) Clone() *Transcript {
	state := make([]byte, len(t.state))
	copy(state, t.state)
	return &Transcript{state: state}
}

// appendFrame appends an unambiguous length-prefixed (label, data) frame.
func (t *Transcript) appendFrame(label string, data []byte) {
	t.state = appendFrame(t.state, label, data)
}

func appendFrame(buf []byte, label string, data []byte) []byte {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], uint64(len(label)))
	buf = append(buf, tmp[:n]...)
	buf = append(buf, label...)
	n = binary.PutUvarint(tmp[:], uint64(len(data)))
	buf = append(buf, tmp[:n]...)
	buf = append(buf, data...)
	return buf
}

// Append absorbs a labeled byte string.
func (t *Transcript) Append(label string, data []byte) {
	t.appendFrame(label, data)
}

// AppendU64 absorbs a labeled integer.
func (t *Transcript) AppendU64(label string, v uint64) {
	var b [8]byte
	config.Encoding.PutUint64(b[:], v)
	t.appendFrame(label, b[:])
}

// AppendPoint absorbs a labeled group element.
func (t *Transcript) AppendPoint(label string, p kyber.Point) {
	t.appendFrame(label, marshalPoint(p))
}

// AppendInOut absorbs a labeled input/pre-output pair.
func (t *Transcript) AppendInOut(label string, io *VrfInOut) {
	buf := marshalPoint(io.input.p)
	buf = append(buf, marshalPoint(io.preOut.p)...)
	t.appendFrame(label, buf)
}

// Challenge derives a scalar from all prior appends plus the label.
func (t *Transcript) Challenge(label string) kyber.Scalar {
	t.appendFrame("challenge", []byte(label))
	xof := Suite.XOF(t.state)
	return Suite.Scalar().Pick(xof)
}

// Witness derives one ephemeral witness scalar, see Witnesses.
func (t *Transcript) Witness(label string, nonceSeed []byte, rng cipher.Stream) kyber.Scalar {
	return t.Witnesses(label, 1, nonceSeed, rng)[0]
}

// Witnesses derives count ephemeral witness scalars by hashing the public
// transcript state together with the secret nonce seed and fresh external
// randomness. A broken rng alone cannot make the result predictable because
// of the nonce seed, and a fully deterministic rng still gives per-message
// witnesses because the transcript state differs per message.
// The transcript state is not modified, secret material never enters it.
func (t *Transcript) Witnesses(label string, count int, nonceSeed []byte, rng cipher.Stream) []kyber.Scalar {
	var ext [config.RandBytes]byte
	if rng != nil {
		random.Bytes(ext[:], rng)
	}
	h, err := blake2b.New512(nil)
	if err != nil {
		panic(err)
	}
	buf := appendFrame(nil, "witness", []byte(label))
	buf = appendFrame(buf, "nonce-seed", nonceSeed)
	buf = appendFrame(buf, "external-rand", ext[:])
	if _, err := h.Write(t.state); err != nil {
		panic(err)
	}
	if _, err := h.Write(buf); err != nil {
		panic(err)
	}
	seed := h.Sum(nil)
	xof := Suite.XOF(seed)
	out := make([]kyber.Scalar, count)
	for i := range out {
		out[i] = Suite.Scalar().Pick(xof)
	}
	zeroBytes(buf)
	zeroBytes(seed)
	return out
}

// marshalPoint returns the canonical encoding of p.
// Marshalling only fails for malformed points which cannot occur here.
func marshalPoint(p kyber.Point) []byte {
	b, err := p.MarshalBinary()
	if err != nil {
		panic(err)
	}
	return b
}

// zeroBytes is a best effort erase of secret bytes.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
