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

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/mys721tx/avsg-go/internal/config"
	"github.com/mys721tx/avsg-go/internal/fileio"
	"github.com/mys721tx/avsg-go/internal/logging"
	"github.com/mys721tx/avsg-go/pkg/achievements"
	"github.com/mys721tx/avsg-go/pkg/backup"
	"github.com/mys721tx/avsg-go/pkg/report"
	"github.com/mys721tx/avsg-go/pkg/savecrypt"
	"github.com/mys721tx/avsg-go/pkg/savedata"
)

var (
	usg = `Usage: %[1]s <command> [arguments]

Commands:
	achievements [-u] <save>	show achievement progress
	hacker [-u] <save>		list creatures left to glitch for Hacker
	decrypt <save> [output]		decrypt a Steam save file
	encrypt <input> <output>	encrypt a file for the Steam release
	dump [-u] <save>		print the save data as YAML
	backup <save> <archive>		store a compressed copy of a save file
	restore <archive> <save>	restore a save file from a backup

The -u or -unencrypted flag reads a save file that is not encrypted. Flags
may appear before or after the file name.
`

	errUsage = errors.New("usage")
)

// usageError returns an error that makes main print the usage.
func usageError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

// app holds the settings and outputs shared by the commands.
type app struct {
	stdout      io.Writer
	stderr      io.Writer
	log         zerolog.Logger
	noColor     bool
	unencrypted bool
}

func newApp(stdout, stderr io.Writer) *app {
	noColor := config.GetBool(config.NoColor)

	a := &app{
		stdout:      stdout,
		stderr:      stderr,
		log:         logging.New(stderr, config.GetString(config.LogLevel), noColor),
		noColor:     noColor,
		unencrypted: config.GetBool(config.Unencrypted),
	}

	if fn := config.Used(); fn != "" {
		a.log.Debug().Str("file", fn).Msg("loaded config")
	}

	return a
}

// run dispatches args to a command.
func (a *app) run(args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	cmd, args := args[0], args[1:]

	switch cmd {
	case "achievements":
		return a.achievements(args)
	case "hacker":
		return a.hacker(args)
	case "decrypt":
		return a.decrypt(args)
	case "encrypt":
		return a.encrypt(args)
	case "dump":
		return a.dump(args)
	case "backup":
		return a.backup(args)
	case "restore":
		return a.restore(args)
	case "help", "-h", "-help", "--help":
		fmt.Fprintf(a.stdout, usg, "avsg")
		return nil
	}

	return usageError("unknown command %q", cmd)
}

// parse parses the flags of cmd and checks the number of positional
// arguments. Flags may come before or after the positional arguments; "--"
// ends flag parsing.
func (a *app) parse(fs *flag.FlagSet, args []string, lo, hi int) ([]string, error) {
	fs.SetOutput(io.Discard)

	var rest []string

	for {
		if err := fs.Parse(args); err != nil {
			return nil, usageError("%s: %s", fs.Name(), err)
		}

		if n := len(args) - fs.NArg(); n > 0 && args[n-1] == "--" {
			rest = append(rest, fs.Args()...)
			break
		}

		args = fs.Args()
		if len(args) == 0 {
			break
		}

		rest = append(rest, args[0])
		args = args[1:]
	}

	if len(rest) < lo || len(rest) > hi {
		return nil, usageError("%s: expecting %d to %d arguments, got %d", fs.Name(), lo, hi, len(rest))
	}

	return rest, nil
}

// saveFlags registers -u and -unencrypted on fs.
func (a *app) saveFlags(fs *flag.FlagSet) *bool {
	unencrypted := a.unencrypted

	fs.BoolVar(&unencrypted, "u", unencrypted, "save file is not encrypted")
	fs.BoolVar(&unencrypted, "unencrypted", unencrypted, "save file is not encrypted")

	return &unencrypted
}

// read reads and decodes a save file.
func (a *app) read(fn string, unencrypted bool) (*savedata.SaveData, error) {
	var (
		data []byte
		err  error
	)

	if unencrypted {
		data, err = os.ReadFile(fn)
	} else {
		data, err = savecrypt.DecryptFile(fn)
	}

	if err != nil {
		return nil, err
	}

	a.log.Debug().Str("file", fn).Int("bytes", len(data)).Bool("unencrypted", unencrypted).Msg("read save file")

	s, err := savedata.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s: %w", fn, err)
	}

	a.log.Debug().
		Int("items", len(s.Items)).
		Int("areas", len(s.AreaSaveData)).
		Int("glitched", len(s.CreaturesGlitched.OrZero())).
		Msg("decoded save data")

	return s, nil
}

func (a *app) achievements(args []string) error {
	fs := flag.NewFlagSet("achievements", flag.ContinueOnError)
	unencrypted := a.saveFlags(fs)

	rest, err := a.parse(fs, args, 1, 1)
	if err != nil {
		return err
	}

	s, err := a.read(rest[0], *unencrypted)
	if err != nil {
		return err
	}

	return report.New(a.stdout, a.noColor).Achievements(achievements.New(s).Report())
}

func (a *app) hacker(args []string) error {
	fs := flag.NewFlagSet("hacker", flag.ContinueOnError)
	unencrypted := a.saveFlags(fs)

	rest, err := a.parse(fs, args, 1, 1)
	if err != nil {
		return err
	}

	s, err := a.read(rest[0], *unencrypted)
	if err != nil {
		return err
	}

	remaining, ok := achievements.New(s).HackerRequires()

	return report.New(a.stdout, a.noColor).Hacker(remaining, ok)
}

func (a *app) decrypt(args []string) error {
	fs := flag.NewFlagSet("decrypt", flag.ContinueOnError)

	rest, err := a.parse(fs, args, 1, 2)
	if err != nil {
		return err
	}

	data, err := savecrypt.DecryptFile(rest[0])
	if err != nil {
		return err
	}

	if len(rest) == 1 {
		_, err = a.stdout.Write(data)

		return err
	}

	if err := fileio.WriteNew(rest[1], data); err != nil {
		return err
	}

	a.log.Info().Str("input", rest[0]).Str("output", rest[1]).Int("bytes", len(data)).Msg("decrypted")

	return nil
}

func (a *app) encrypt(args []string) error {
	fs := flag.NewFlagSet("encrypt", flag.ContinueOnError)

	rest, err := a.parse(fs, args, 2, 2)
	if err != nil {
		return err
	}

	if err := savecrypt.EncryptFile(rest[0], rest[1]); err != nil {
		return err
	}

	a.log.Info().Str("input", rest[0]).Str("output", rest[1]).Msg("encrypted")

	return nil
}

func (a *app) dump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	unencrypted := a.saveFlags(fs)

	rest, err := a.parse(fs, args, 1, 1)
	if err != nil {
		return err
	}

	s, err := a.read(rest[0], *unencrypted)
	if err != nil {
		return err
	}

	return s.WriteYAML(a.stdout)
}

func (a *app) backup(args []string) error {
	fs := flag.NewFlagSet("backup", flag.ContinueOnError)

	rest, err := a.parse(fs, args, 2, 2)
	if err != nil {
		return err
	}

	f, err := backup.Backup(rest[0], rest[1])
	if err != nil {
		return err
	}

	a.log.Info().
		Str("input", rest[0]).
		Str("output", rest[1]).
		Int32("raw", f.SizeRaw).
		Int32("stored", f.SizeCom).
		Msg("backed up")

	return nil
}

func (a *app) restore(args []string) error {
	fs := flag.NewFlagSet("restore", flag.ContinueOnError)

	rest, err := a.parse(fs, args, 2, 2)
	if err != nil {
		return err
	}

	f, err := backup.Restore(rest[0], rest[1])
	if err != nil {
		return err
	}

	a.log.Info().Str("input", rest[0]).Str("output", rest[1]).Int32("raw", f.SizeRaw).Msg("restored")

	return nil
}

func main() {
	if err := config.Load(config.Dirs()...); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	a := newApp(os.Stdout, os.Stderr)

	if err := a.run(os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "%s\n\n", err)
			fmt.Fprintf(os.Stderr, usg, os.Args[0])
			os.Exit(2)
		}

		a.log.Debug().Err(err).Msg("command failed")
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
