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

/*
General configuration settings.
*/
package config

import (
	"encoding/binary"
)

type Logtype int

const (
	GOLOG Logtype = iota // uses the default go logger
	FMT                  // prints logs using fmt package
)

type LogFmtLevel int

const (
	LOGERROR LogFmtLevel = iota
	LOGWARNING
	LOGINFO
)

const (
	// for logging
	LoggingType     = GOLOG
	LoggingFmtLevel = LOGWARNING

	// SeedBytes is the size of the seed used to generate a secret key.
	SeedBytes = 32

	// NonceSeedBytes is the size of the secret nonce seed kept alongside the
	// key scalar for deterministic witness generation.
	NonceSeedBytes = 32

	// MaxInputMsgSize bounds the messages that may be turned into a VRF
	// input point, messages of this size or longer are rejected. The IRTF
	// hash-to-curve drafts cap messages at 65535 bytes, the same limit is
	// enforced now to stay compatible once the temporary input construction
	// is replaced.
	MaxInputMsgSize = 1 << 16

	// RandBytes is how much external randomness is mixed into each witness.
	RandBytes = 32

	// MaxRingProofSize bounds the serialized size of a ring membership
	// proof, so a bad length prefix cannot force a huge allocation during
	// decoding.
	MaxRingProofSize = 1 << 20
)

var Encoding = binary.LittleEndian // encoding for marshalling
