// Copyright 2026 go-dense Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dense

import "errors"

// Sentinel errors for the dense containers, matched with errors.Is.
//
// The check order is part of the observable contract: operands are
// nil-checked before they are size-checked, always.
var (
	// ErrNilOperand is returned when a required vector, matrix or provider
	// argument is nil.
	ErrNilOperand = errors.New("dense: nil operand")

	// ErrSizeMismatch is returned when the operands or result of a binary
	// operation disagree on length or shape.
	ErrSizeMismatch = errors.New("dense: size mismatch")

	// ErrIndexOutOfRange is returned by indexed element access with an
	// index outside [0, Len) or the matrix bounds.
	ErrIndexOutOfRange = errors.New("dense: index out of range")

	// ErrInvalidArgument is returned for arguments that are structurally
	// impossible rather than mismatched: sizes below 1, p < 1 in NormP.
	ErrInvalidArgument = errors.New("dense: invalid argument")

	// ErrFormat is returned by vector parsing for empty input, mismatched
	// brackets or malformed numeric tokens.
	ErrFormat = errors.New("dense: malformed vector literal")

	// ErrProviderSet is returned by Use when the process-wide provider has
	// already been assigned.
	ErrProviderSet = errors.New("dense: provider already configured")
)
