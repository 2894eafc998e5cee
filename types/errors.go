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

package types

import (
	"fmt"
)

// signing and verification
var ErrInvalidSignature = fmt.Errorf("invalid signature")
var ErrInvalidArity = fmt.Errorf("number of input/output pairs does not match the signature arity")
var ErrInvalidPub = fmt.Errorf("invalid pub")
var ErrNilPriv = fmt.Errorf("nil priv key")

// input construction
var ErrMessageTooLong = fmt.Errorf("message too long for vrf input construction")

// serialization
var ErrNotEnoughBytes = fmt.Errorf("not enough bytes")
var ErrDeserialize = fmt.Errorf("error deserialize")
var ErrInvalidSeedSize = fmt.Errorf("invalid seed size")

// ring proofs
var ErrInvalidRingProof = fmt.Errorf("invalid ring membership proof")
var ErrNilRingProver = fmt.Errorf("nil ring prover")
