package router

// Params holds the parameters bound during route matching as ordered
// key/value pairs. Insertion order follows path order, so the first
// pair always corresponds to the leftmost dynamic segment.
type Params struct {
	keys   []string
	values []string
}

// Get returns the value bound under key, or "" when absent.
func (p Params) Get(key string) string {
	for i, k := range p.keys {
		if k == key {
			return p.values[i]
		}
	}
	return ""
}

// Has reports whether a value is bound under key.
func (p Params) Has(key string) bool {
	for _, k := range p.keys {
		if k == key {
			return true
		}
	}
	return false
}

// Len returns the number of bound parameters.
func (p Params) Len() int {
	return len(p.keys)
}

// Keys returns the parameter names in path order.
func (p Params) Keys() []string {
	return p.keys
}

// Values returns the parameter values in path order.
func (p Params) Values() []string {
	return p.values
}

func (p *Params) add(key, value string) {
	p.keys = append(p.keys, key)
	p.values = append(p.values, value)
}

// truncate discards bindings added after mark. The matcher uses it to
// roll back tentative param bindings when a subtree fails.
func (p *Params) truncate(mark int) {
	p.keys = p.keys[:mark]
	p.values = p.values[:mark]
}
