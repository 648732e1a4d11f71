package costreport

// Expansion tracks which order groups are disclosed. After ToggleAll
// the set is either empty or exactly the full key set, never a partial
// mix.
type Expansion map[string]bool

func NewExpansion() Expansion {
	return make(Expansion)
}

func (e Expansion) Expanded(key string) bool {
	return e[key]
}

func (e Expansion) Toggle(key string) {
	if e[key] {
		delete(e, key)
	} else {
		e[key] = true
	}
}

// ToggleAll collapses everything when every current key is expanded,
// otherwise expands everything. Applied twice from an empty or full
// state it restores the original state.
func (e Expansion) ToggleAll(keys []string) {
	all := len(keys) > 0
	for _, k := range keys {
		if !e[k] {
			all = false
			break
		}
	}

	if all {
		for _, k := range keys {
			delete(e, k)
		}
		return
	}
	for _, k := range keys {
		e[k] = true
	}
}
