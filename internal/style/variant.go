package style

import (
	"errors"
	"fmt"
)

// ErrInvalidVariant is a caller bug: the key is not declared by the table.
var ErrInvalidVariant = errors.New("style: invalid variant")

// Table maps a variant key to ordered fragments. Default is always merged first.
type Table[K comparable] struct {
	Default  []Fragment
	Variants map[K][]Fragment
}

// Resolve returns Default followed by the fragments for key.
// The returned slice is fresh; appending to it never touches the table.
func Resolve[K comparable](t Table[K], key K) ([]Fragment, error) {
	v, ok := t.Variants[key]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVariant, key)
	}
	out := make([]Fragment, 0, len(t.Default)+len(v))
	out = append(out, t.Default...)
	out = append(out, v...)
	return out, nil
}

// MustResolve is Resolve for keys that were validated upstream.
func MustResolve[K comparable](t Table[K], key K) []Fragment {
	out, err := Resolve(t, key)
	if err != nil {
		panic(err)
	}
	return out
}

type Alignment string

const (
	AlignCenter Alignment = "center"
	AlignLeft   Alignment = "left"
)

func (a Alignment) Valid() bool { return a == AlignCenter || a == AlignLeft }

// ParseAlignment maps "" to center.
func ParseAlignment(s string) (Alignment, error) {
	if s == "" {
		return AlignCenter, nil
	}
	a := Alignment(s)
	if !a.Valid() {
		return "", fmt.Errorf("%w: alignment %q", ErrInvalidVariant, s)
	}
	return a, nil
}

type ListType string

const (
	ListSingle  ListType = "single"
	ListGrouped ListType = "grouped"
)

func (l ListType) Valid() bool { return l == ListSingle || l == ListGrouped }

// ParseListType maps "" to single.
func ParseListType(s string) (ListType, error) {
	if s == "" {
		return ListSingle, nil
	}
	l := ListType(s)
	if !l.Valid() {
		return "", fmt.Errorf("%w: list type %q", ErrInvalidVariant, s)
	}
	return l, nil
}

// Columns is the requested column count for a list.
type Columns int

func (c Columns) Valid() bool { return c >= 1 && c <= 3 }

// ParseColumns maps 0 to a single column.
func ParseColumns(n int) (Columns, error) {
	if n == 0 {
		return 1, nil
	}
	c := Columns(n)
	if !c.Valid() {
		return 0, fmt.Errorf("%w: columns %d", ErrInvalidVariant, n)
	}
	return c, nil
}
