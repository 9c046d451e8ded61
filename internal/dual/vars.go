package dual

// Vars is an ordered set of unique variable names. A dual number's gradient
// (and Hessian) is indexed against a Vars instance: position i of the
// gradient is the partial derivative with respect to name i.
//
// A Vars is immutable after construction and is shared by pointer across the
// dual numbers derived from one another. Sharing is an optimization for the
// identity fast path in arithmetic, not a semantic requirement: value
// equality is always checked independently of pointer equality.
type Vars struct {
	names []string
	index map[string]int
}

// NewVars builds a registry from names, dropping duplicates while keeping
// first-occurrence order.
func NewVars(names ...string) *Vars {
	v := &Vars{
		names: make([]string, 0, len(names)),
		index: make(map[string]int, len(names)),
	}
	for _, name := range names {
		if _, ok := v.index[name]; ok {
			continue
		}
		v.index[name] = len(v.names)
		v.names = append(v.names, name)
	}
	return v
}

// fromUnique wraps names already known to be unique.
func fromUnique(names []string) *Vars {
	v := &Vars{names: names, index: make(map[string]int, len(names))}
	for i, name := range names {
		v.index[name] = i
	}
	return v
}

// Len returns the number of variables.
func (v *Vars) Len() int { return len(v.names) }

// Names returns a copy of the variable names in registry order.
func (v *Vars) Names() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

// Index returns the position of name, or false when the registry does not
// contain it.
func (v *Vars) Index(name string) (int, bool) {
	i, ok := v.index[name]
	return i, ok
}

// Has reports whether name is in the registry.
func (v *Vars) Has(name string) bool {
	_, ok := v.index[name]
	return ok
}

// EqualValue reports order-sensitive value equality: same length and the
// same name at every position. Distinct from set equality.
func (v *Vars) EqualValue(o *Vars) bool {
	if v == o {
		return true
	}
	if len(v.names) != len(o.names) {
		return false
	}
	for i, name := range v.names {
		if o.names[i] != name {
			return false
		}
	}
	return true
}

// containsAll reports set containment, ignoring order. Permutations of the
// same names land here and are repaired by the name-lookup reindex.
func (v *Vars) containsAll(o *Vars) bool {
	if len(o.names) > len(v.names) {
		return false
	}
	for _, name := range o.names {
		if _, ok := v.index[name]; !ok {
			return false
		}
	}
	return true
}

// Union returns a registry holding all of v's names in v's order followed by
// the names unique to o in o's order. When one side already covers the other
// the covering registry is returned as-is, preserving pointer sharing.
func (v *Vars) Union(o *Vars) *Vars {
	if v == o {
		return v
	}
	if len(v.names) == 0 {
		return o
	}
	var extra []string
	for _, name := range o.names {
		if _, ok := v.index[name]; !ok {
			extra = append(extra, name)
		}
	}
	if len(extra) == 0 {
		return v
	}
	merged := make([]string, 0, len(v.names)+len(extra))
	merged = append(merged, v.names...)
	merged = append(merged, extra...)
	return fromUnique(merged)
}

// mapFrom returns, for each of v's positions, the position of the same name
// in src, or -1 when src does not carry it.
func (v *Vars) mapFrom(src *Vars) []int {
	m := make([]int, len(v.names))
	for i, name := range v.names {
		if j, ok := src.index[name]; ok {
			m[i] = j
		} else {
			m[i] = -1
		}
	}
	return m
}

// varsRelation classifies how two registries relate so that arithmetic can
// pick the cheapest reconciliation path.
type varsRelation int

const (
	varsIdentical  varsRelation = iota // same instance
	varsEqualValue                     // same names, same order, different instance
	varsSuperset                       // left contains right as a set
	varsSubset                         // right contains left as a set
	varsDifferent                      // neither contains the other
)

// relation classifies a against b. The two identical-set cases dominate real
// workloads, where most operands come from a small shared pool of market
// variables.
func relation(a, b *Vars) varsRelation {
	switch {
	case a == b:
		return varsIdentical
	case a.EqualValue(b):
		return varsEqualValue
	case a.containsAll(b):
		return varsSuperset
	case b.containsAll(a):
		return varsSubset
	default:
		return varsDifferent
	}
}
