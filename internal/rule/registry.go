package rule

import (
	"fmt"
	"sort"
	"sync"
)

var globalRegistry = &Registry{rules: make(map[string]Rule)}

// Registry holds the installed rules, keyed by name.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

// GlobalRegistry returns the process-wide registry rules register into from
// their init functions.
func GlobalRegistry() *Registry { return globalRegistry }

// Register installs r into the global registry.
func Register(r Rule) { globalRegistry.Register(r) }

// Register installs r, panicking on a duplicate name. Registration happens
// at init time, so a duplicate is a programming error, not a runtime
// condition.
func (reg *Registry) Register(r Rule) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	name := r.Name()
	if _, exists := reg.rules[name]; exists {
		panic(fmt.Sprintf("widgetlint: duplicate rule registration: %s", name))
	}
	reg.rules[name] = r
}

// Get returns the rule registered under name.
func (reg *Registry) Get(name string) (Rule, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	r, ok := reg.rules[name]
	return r, ok
}

// All returns every registered rule, sorted by name for deterministic
// iteration.
func (reg *Registry) All() []Rule {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]Rule, 0, len(reg.rules))
	for _, r := range reg.rules {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Names returns the sorted names of all registered rules.
func (reg *Registry) Names() []string {
	all := reg.All()
	names := make([]string, len(all))
	for i, r := range all {
		names[i] = r.Name()
	}
	return names
}
