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

package enum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mys721tx/avsg-go/internal/enum"
)

type color int

const (
	red color = iota
	green
	blue
)

func newTable() *enum.Table[color] {
	return enum.New[color]("color").
		Add(red, "RED").
		Add(green, "GREEN", "VERT", "GRUEN").
		Add(blue, "BLUE")
}

func TestParse(t *testing.T) {
	tbl := newTable()

	tests := []struct {
		token    string
		expected color
	}{
		{"RED", red},
		{"GREEN", green},
		{"VERT", green},
		{"GRUEN", green},
		{"BLUE", blue},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := tbl.Parse(tt.token)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseUnknown(t *testing.T) {
	tbl := newTable()

	for _, token := range []string{"", "red", "PURPLE", " RED"} {
		_, err := tbl.Parse(token)

		assert.ErrorIs(t, err, enum.ErrUnknownToken, "token %q", token)
	}
}

func TestTokenIsCanonical(t *testing.T) {
	tbl := newTable()

	assert.Equal(t, "GREEN", tbl.Token(green))
	assert.Equal(t, "RED", tbl.Token(red))
	assert.Equal(t, "", tbl.Token(color(42)))
}

func TestValuesKeepOrder(t *testing.T) {
	tbl := newTable()

	assert.Equal(t, []color{red, green, blue}, tbl.Values())

	// The returned slice is a copy.
	vals := tbl.Values()
	vals[0] = blue
	assert.Equal(t, red, tbl.Values()[0])
}

func TestAddDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		enum.New[color]("color").Add(red, "RED").Add(red, "ROUGE")
	})

	assert.Panics(t, func() {
		enum.New[color]("color").Add(red, "RED").Add(green, "GREEN", "RED")
	})
}
