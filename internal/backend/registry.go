package backend

import (
	"fmt"
	"sort"
	"sync"
)

var (
	mu        sync.RWMutex
	providers = map[string]Provider{}
)

// preference orders providers when the caller does not pick one.
var preference = []string{"liboqs", "circl"}

// Register makes a provider available by name. It panics on duplicates, the
// same way database/sql drivers do.
func Register(p Provider) {
	if p == nil {
		panic("backend: Register provider is nil")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := providers[p.Name()]; dup {
		panic("backend: Register called twice for provider " + p.Name())
	}
	providers[p.Name()] = p
}

// Lookup returns the provider registered under name. An empty name selects
// the preferred provider compiled into the binary.
func Lookup(name string) (Provider, error) {
	mu.RLock()
	defer mu.RUnlock()

	if name == "" {
		for _, n := range preference {
			if p, ok := providers[n]; ok {
				return p, nil
			}
		}
		for _, n := range sortedNames() {
			return providers[n], nil
		}
		return nil, ErrNotBuilt
	}

	p, ok := providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotBuilt, name)
	}
	return p, nil
}

// Names lists registered providers.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return sortedNames()
}

func sortedNames() []string {
	out := make([]string, 0, len(providers))
	for n := range providers {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
