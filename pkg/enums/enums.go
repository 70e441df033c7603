package enums

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrDuplicate = errors.New("enums: duplicate member")
	ErrUnknown   = errors.New("enums: unknown member")
)

// Member describes one value of an enumeration.
type Member[T comparable] struct {
	Value       T      `json:"value" yaml:"value"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Set is an ordered, immutable registry of enum members.
type Set[T comparable] struct {
	members []Member[T]
	byValue map[T]int
	byName  map[string]int
}

// NewSet registers members in the given order. Values and names (compared
// case-insensitively) must be unique.
func NewSet[T comparable](members ...Member[T]) (*Set[T], error) {
	s := &Set[T]{
		members: slices.Clone(members),
		byValue: make(map[T]int, len(members)),
		byName:  make(map[string]int, len(members)),
	}
	for i, m := range members {
		if _, ok := s.byValue[m.Value]; ok {
			return nil, fmt.Errorf("%w: value %v", ErrDuplicate, m.Value)
		}
		key := strings.ToLower(m.Name)
		if _, ok := s.byName[key]; ok {
			return nil, fmt.Errorf("%w: name %q", ErrDuplicate, m.Name)
		}
		s.byValue[m.Value] = i
		s.byName[key] = i
	}
	return s, nil
}

// MustNewSet is NewSet for package-level declarations. Panics on duplicates.
func MustNewSet[T comparable](members ...Member[T]) *Set[T] {
	s, err := NewSet(members...)
	if err != nil {
		panic(err)
	}
	return s
}

// Values returns the member values in registration order.
func (s *Set[T]) Values() []T {
	out := make([]T, len(s.members))
	for i, m := range s.members {
		out[i] = m.Value
	}
	return out
}

// Names returns the member names in registration order.
func (s *Set[T]) Names() []string {
	out := make([]string, len(s.members))
	for i, m := range s.members {
		out[i] = m.Name
	}
	return out
}

// Parse finds a member by name, ignoring case and surrounding spaces.
func (s *Set[T]) Parse(name string) (T, error) {
	if i, ok := s.byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s.members[i].Value, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// Name returns the registered name of v, or its default formatting when v is not registered.
func (s *Set[T]) Name(v T) string {
	if i, ok := s.byValue[v]; ok {
		return s.members[i].Name
	}
	return fmt.Sprint(v)
}

// Description returns the description of v, or "" for unknown values.
func (s *Set[T]) Description(v T) string {
	if i, ok := s.byValue[v]; ok {
		return s.members[i].Description
	}
	return ""
}

// Contains reports whether v is a registered member.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.byValue[v]
	return ok
}

// List returns a copy of the members, ready for JSON or YAML encoding.
func (s *Set[T]) List() []Member[T] {
	return slices.Clone(s.members)
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	return len(s.members)
}
