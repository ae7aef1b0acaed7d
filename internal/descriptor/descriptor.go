// Package descriptor reads the animation declarations carried by an element.
package descriptor

import (
	"strconv"
	"strings"
)

// Attribute keys read from elements and slides.
const (
	AttrAnimation  = "animation"
	AttrOrder      = "anim-order"
	AttrTransition = "transition"
	AttrRepeats    = "repeats"
)

// ImplicitOrderBase is the order assigned to animations without a usable hint.
const ImplicitOrderBase = 999

// Element is an opaque handle to a visual unit owned by the view tree.
type Element interface {
	ID() string
	Attr(name string) string
}

// Declaration is one declared animation of an element
type Declaration struct {
	Name     string
	Order    int
	Explicit bool // Order came from the element's hint
}

// ParseNames splits an animation attribute into its names.
func ParseNames(attr string) []string {
	names := strings.Fields(attr)
	if len(names) == 0 {
		return nil
	}
	return names
}

// ParseOrders parses an order hint for count animations.
// A single integer is a base that increments per animation; a comma separated
// list must hold exactly count integers.
func ParseOrders(attr string, count int) ([]int, bool) {
	attr = strings.TrimSpace(attr)
	if attr == "" || count <= 0 {
		return nil, false
	}

	parts := strings.Split(attr, ",")
	if len(parts) == 1 {
		base, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, false
		}
		orders := make([]int, count)
		for i := range orders {
			orders[i] = base + i
		}
		return orders, true
	}

	if len(parts) != count {
		return nil, false
	}

	orders := make([]int, count)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, false
		}
		orders[i] = n
	}
	return orders, true
}

// Parse returns the declarations of el, found at position in its slide.
func Parse(el Element, position int) []Declaration {
	names := ParseNames(el.Attr(AttrAnimation))
	if len(names) == 0 {
		return nil
	}

	orders, ok := ParseOrders(el.Attr(AttrOrder), len(names))

	decls := make([]Declaration, len(names))
	for i, name := range names {
		if ok {
			decls[i] = Declaration{Name: name, Order: orders[i], Explicit: true}
		} else {
			decls[i] = Declaration{Name: name, Order: ImplicitOrderBase + position}
		}
	}
	return decls
}

// Malformed reports whether el carries an order hint that could not be used.
func Malformed(el Element) bool {
	hint := strings.TrimSpace(el.Attr(AttrOrder))
	if hint == "" {
		return false
	}
	names := ParseNames(el.Attr(AttrAnimation))
	if len(names) == 0 {
		return false
	}
	_, ok := ParseOrders(hint, len(names))
	return !ok
}
