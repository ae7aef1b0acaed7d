package descriptor

import (
	"reflect"
	"testing"
)

type element struct {
	id    string
	attrs map[string]string
}

func (e element) ID() string              { return e.id }
func (e element) Attr(name string) string { return e.attrs[name] }

func TestParseNames(t *testing.T) {
	tests := []struct {
		attr string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"appear", []string{"appear"}},
		{"appear  disappear\trotate", []string{"appear", "disappear", "rotate"}},
	}

	for _, tt := range tests {
		got := ParseNames(tt.attr)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseNames(%q) = %v, want %v", tt.attr, got, tt.want)
		}
	}
}

func TestParseOrders(t *testing.T) {
	tests := []struct {
		attr  string
		count int
		want  []int
		ok    bool
	}{
		{"", 1, nil, false},
		{"5", 1, []int{5}, true},
		{"5", 3, []int{5, 6, 7}, true},
		{"2,1", 2, []int{2, 1}, true},
		{"1, 5", 2, []int{1, 5}, true},
		{"1,2,3", 2, nil, false},
		{"1,x", 2, nil, false},
		{"abc", 1, nil, false},
		{"3", 0, nil, false},
	}

	for _, tt := range tests {
		got, ok := ParseOrders(tt.attr, tt.count)
		if ok != tt.ok || !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseOrders(%q, %d) = %v, %v; want %v, %v", tt.attr, tt.count, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParse(t *testing.T) {
	el := element{id: "e1", attrs: map[string]string{AttrAnimation: "appear rotate", AttrOrder: "2,1"}}
	got := Parse(el, 0)
	want := []Declaration{
		{Name: "appear", Order: 2, Explicit: true},
		{Name: "rotate", Order: 1, Explicit: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse = %+v, want %+v", got, want)
	}
}

func TestParseWithoutHint(t *testing.T) {
	el := element{id: "e2", attrs: map[string]string{AttrAnimation: "appear disappear"}}
	got := Parse(el, 3)
	for _, d := range got {
		if d.Explicit {
			t.Errorf("declaration %s should not be explicit", d.Name)
		}
		if d.Order != ImplicitOrderBase+3 {
			t.Errorf("declaration %s order = %d, want %d", d.Name, d.Order, ImplicitOrderBase+3)
		}
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(got))
	}
}

func TestParseMalformedFallsBack(t *testing.T) {
	el := element{id: "e3", attrs: map[string]string{AttrAnimation: "appear disappear", AttrOrder: "1,2,3"}}
	if !Malformed(el) {
		t.Error("expected hint to be reported as malformed")
	}
	for _, d := range Parse(el, 1) {
		if d.Explicit || d.Order != ImplicitOrderBase+1 {
			t.Errorf("malformed hint should fall back to implicit order, got %+v", d)
		}
	}
}

func TestParseNoAnimation(t *testing.T) {
	el := element{id: "static", attrs: map[string]string{AttrOrder: "4"}}
	if got := Parse(el, 0); got != nil {
		t.Errorf("expected no declarations, got %+v", got)
	}
	if Malformed(el) {
		t.Error("an element without animations has nothing malformed")
	}
}
