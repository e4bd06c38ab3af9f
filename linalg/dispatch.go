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

package linalg

import (
	"os"
	"strconv"

	"github.com/densekit/go-dense/workerpool"
)

// nativeByDefault reports whether this platform's CPU makes the Native
// backend the right default. Set by init() in dispatch_*.go files.
var nativeByDefault bool

// kernelBlock is the MatMul panel edge chosen for this CPU's cache
// hierarchy. Set by init() in dispatch_*.go files; 0 means the Native
// default.
var kernelBlock int

// NoNativeEnv checks the GODENSE_NONATIVE environment variable. When set,
// Default returns the Reference backend regardless of CPU capabilities,
// which is useful for testing and for bisecting numerical differences.
func NoNativeEnv() bool {
	val := os.Getenv("GODENSE_NONATIVE")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Default returns the provider for this process: Native running on the
// shared worker pool when the CPU warrants it and GODENSE_NONATIVE is
// unset, otherwise Reference.
func Default() Provider {
	if NoNativeEnv() || !nativeByDefault {
		return Reference{}
	}
	return NewNative(workerpool.Default())
}
