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

	"github.com/tcrain/dleqvrf/config"
	"github.com/tcrain/dleqvrf/logging"
	"github.com/tcrain/dleqvrf/types"
)

var inputWarnOnce sync.Once

// NewVrfInput derives the input point for a domain separated message.
//
// TEMPORARY: this samples a uniform point from a transcript seeded with
// domain and message instead of using an IRTF compliant hash-to-curve map.
// The construction is sound for evaluation but is NOT message hiding, and
// its outputs will change when a real hash-to-curve replaces it, so it must
// not ship in a deployment that needs either property. The transcript label
// makes the incompatibility explicit.
func NewVrfInput(domain, message []byte) (*VrfInput, error) {
	if len(message) >= config.MaxInputMsgSize {
		return nil, types.ErrMessageTooLong
	}
	inputWarnOnce.Do(func() {
		logging.Warning("deriving vrf inputs with the temporary transcript construction, not a hash-to-curve")
	})
	t := NewTranscript("TemporaryDoNotDeploy")
	t.Append("domain", domain)
	t.Append("message", message)
	xof := Suite.XOF(t.state)
	return &VrfInput{p: Suite.Point().Pick(xof)}, nil
}
