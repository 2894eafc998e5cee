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
This package implements verifiable random functions built from
discrete-log-equality (DLEQ) proofs over the edwards25519 group.
A signer evaluates the VRF at one or more input points, producing a
pre-output point per input plus a single Schnorr-style signature that
proves every pre-output shares the secret key's discrete log.
Verifiers replay the same transcript from public data, so the output
is unpredictable without the key but publicly checkable with it.

Two protocol flavors are supported:
    - ThinVrf: the public key itself anchors the proof
    - PedersenVrf: a blinded key commitment stands in for the public key,
      so a separate ring membership proof (see the ring subpackage) can show
      the key belongs to an authorized set without revealing which one

Multiple input/output pairs are folded into a single proof statement by a
random linear combination with transcript-derived coefficients, so proof
size does not grow with the number of inputs.
*/
package vrf
