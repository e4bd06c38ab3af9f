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

import (
	"sync"

	"github.com/densekit/go-dense/linalg"
)

// The process-wide provider the containers delegate arithmetic to. It
// defaults to linalg.Default() and may be replaced exactly once, before any
// numeric work, via Use. There is deliberately no per-vector provider state:
// the provider is configuration, not data.
var (
	provMu     sync.RWMutex
	provider   linalg.Provider = linalg.Default()
	provFrozen bool
)

// Provider returns the provider currently serving this package.
func Provider() linalg.Provider {
	provMu.RLock()
	defer provMu.RUnlock()
	return provider
}

// Use installs p as the process-wide provider. It may be called at most
// once, and before any vectors or matrices are operated on; a second call
// returns ErrProviderSet. Passing nil returns ErrNilOperand.
func Use(p linalg.Provider) error {
	if p == nil {
		return ErrNilOperand
	}

	provMu.Lock()
	defer provMu.Unlock()
	if provFrozen {
		return ErrProviderSet
	}
	provider = p
	provFrozen = true
	return nil
}
