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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"noColor": true
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", GetString(LogLevel))
	assert.True(t, GetBool(NoColor))
	assert.False(t, GetBool(Unencrypted))
	assert.Equal(t, filepath.Join(dir, FileName), Used())
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "warn", GetString(LogLevel))
	assert.False(t, GetBool(NoColor))
	assert.False(t, GetBool(Unencrypted))
	assert.Equal(t, "", Used())
}

func TestLoad_FirstDirWins(t *testing.T) {
	t.Cleanup(viper.Reset)

	first, second := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(first, FileName), []byte(`{"logLevel": "error"}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(second, FileName), []byte(`{"logLevel": "trace"}`), 0644))

	require.NoError(t, Load(first, second))
	assert.Equal(t, "error", GetString(LogLevel))
}

func TestLoad_Environment(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("AVSG_LOGLEVEL", "info")
	t.Setenv("AVSG_UNENCRYPTED", "true")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"logLevel": "debug"}`), 0644))

	require.NoError(t, Load(dir))

	assert.Equal(t, "info", GetString(LogLevel))
	assert.True(t, GetBool(Unencrypted))
}

func TestLoad_InvalidFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"logLevel":`), 0644))

	err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestDirs(t *testing.T) {
	dirs := Dirs()

	require.NotEmpty(t, dirs)
	assert.Equal(t, ".", dirs[0])
}
