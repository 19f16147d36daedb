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

package logging_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/mys721tx/avsg-go/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"Info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"", zerolog.WarnLevel},
		{"verbose", zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseLevel(tt.input))
		})
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, "info", true)

	log.Debug().Msg("hidden")
	log.Info().Str("file", "save.sav").Msg("decrypted")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "decrypted")
	assert.Contains(t, out, "file=save.sav")
	assert.NotContains(t, out, "\x1b[", "NoColor output must not contain escapes")
}

func TestNewTrace(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, "trace", true)

	log.Trace().Msg("block decrypted")

	assert.Contains(t, buf.String(), "block decrypted")
}
