// avsg-go: Axiom Verge save game inspector
// Copyright (C) 2018  Yishen Miao
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package enum maps closed enumerations to the tokens they are serialized as.
package enum

import (
	"errors"
	"fmt"
)

// ErrUnknownToken is returned when a token is not in a Table.
var ErrUnknownToken = errors.New("unknown token")

// Table is a bidirectional lookup between enum values and serialized tokens.
// A value has exactly one canonical token and any number of aliases. Aliases
// decode to the value but are never produced by Token.
type Table[E comparable] struct {
	name   string
	order  []E
	decode map[string]E
	encode map[E]string
}

// New returns an empty Table. name is used in error messages.
func New[E comparable](name string) *Table[E] {
	return &Table[E]{
		name:   name,
		decode: make(map[string]E),
		encode: make(map[E]string),
	}
}

// Add registers v with its canonical token and optional aliases. Add panics
// on a duplicate value or token since tables are built at init time.
func (t *Table[E]) Add(v E, token string, aliases ...string) *Table[E] {
	if _, ok := t.encode[v]; ok {
		panic(fmt.Sprintf("enum %s: value for %q registered twice", t.name, token))
	}

	t.encode[v] = token
	t.order = append(t.order, v)

	for _, tok := range append([]string{token}, aliases...) {
		if _, ok := t.decode[tok]; ok {
			panic(fmt.Sprintf("enum %s: token %q registered twice", t.name, tok))
		}

		t.decode[tok] = v
	}

	return t
}

// Parse returns the value for a canonical token or an alias.
func (t *Table[E]) Parse(token string) (E, error) {
	v, ok := t.decode[token]
	if !ok {
		var zero E
		return zero, fmt.Errorf("%w %q for %s", ErrUnknownToken, token, t.name)
	}

	return v, nil
}

// Token returns the canonical token of v, or "" if v is not registered.
func (t *Table[E]) Token(v E) string {
	return t.encode[v]
}

// Values returns the registered values in registration order.
func (t *Table[E]) Values() []E {
	return append([]E(nil), t.order...)
}

// Name returns the table name.
func (t *Table[E]) Name() string {
	return t.name
}
