package dual

import "testing"

func TestNewVarsDedup(t *testing.T) {
	v := NewVars("x", "y", "x", "z", "y")
	if v.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", v.Len())
	}
	want := []string{"x", "y", "z"}
	for i, name := range v.Names() {
		if name != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, name, want[i])
		}
	}
}

func TestVarsIndex(t *testing.T) {
	v := NewVars("a", "b")
	if i, ok := v.Index("b"); !ok || i != 1 {
		t.Errorf("Index(b) = %d, %v, want 1, true", i, ok)
	}
	if _, ok := v.Index("c"); ok {
		t.Error("Index(c) reported present")
	}
	if !v.Has("a") || v.Has("c") {
		t.Error("Has gave wrong membership")
	}
}

func TestVarsEqualValueOrderSensitive(t *testing.T) {
	a := NewVars("x", "y")
	b := NewVars("x", "y")
	c := NewVars("y", "x")
	if !a.EqualValue(b) {
		t.Error("same names, same order: want equal")
	}
	if a.EqualValue(c) {
		t.Error("same names, different order: want not equal")
	}
	if a == b {
		t.Error("independent constructions should be distinct instances")
	}
}

func TestVarsUnion(t *testing.T) {
	a := NewVars("a", "b")
	b := NewVars("b", "c")
	u := a.Union(b)
	want := []string{"a", "b", "c"}
	if u.Len() != 3 {
		t.Fatalf("union Len() = %d, want 3", u.Len())
	}
	for i, name := range u.Names() {
		if name != want[i] {
			t.Errorf("union order[%d] = %q, want %q", i, name, want[i])
		}
	}
}

func TestVarsUnionSharing(t *testing.T) {
	a := NewVars("a", "b", "c")
	sub := NewVars("c", "a")
	if a.Union(sub) != a {
		t.Error("union with a covered set should return the receiver")
	}
	empty := NewVars()
	if empty.Union(a) != a {
		t.Error("union from empty should return the other registry")
	}
	if a.Union(a) != a {
		t.Error("union with itself should return the receiver")
	}
}

func TestRelation(t *testing.T) {
	base := NewVars("a", "b")
	tests := []struct {
		name string
		a, b *Vars
		want varsRelation
	}{
		{"identical", base, base, varsIdentical},
		{"equal value", base, NewVars("a", "b"), varsEqualValue},
		{"superset", base, NewVars("b"), varsSuperset},
		{"subset", NewVars("a"), base, varsSubset},
		{"permutation lands superset", base, NewVars("b", "a"), varsSuperset},
		{"different", base, NewVars("b", "c"), varsDifferent},
	}
	for _, tt := range tests {
		if got := relation(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: relation = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestMapFrom(t *testing.T) {
	target := NewVars("a", "b", "c")
	src := NewVars("c", "a")
	m := target.mapFrom(src)
	want := []int{1, -1, 0}
	for i := range want {
		if m[i] != want[i] {
			t.Errorf("mapFrom[%d] = %d, want %d", i, m[i], want[i])
		}
	}
}
