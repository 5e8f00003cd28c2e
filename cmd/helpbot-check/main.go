// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/pflag"

	"github.com/helpbot-matrix/helpbot/config"
	"github.com/helpbot-matrix/helpbot/state"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(arguments []string, out, errOut io.Writer) int {
	flags := pflag.NewFlagSet("helpbot-check", pflag.ContinueOnError)
	flags.SetOutput(errOut)
	configPath := flags.String("config", "", "configuration document (default $"+config.ConfigDirEnv+"/"+config.ConfigFileName+")")
	dataDir := flags.String("data-dir", "", "state record directory (default $"+state.DataDirEnv+")")
	showVersion := flags.Bool("version", false, "print the version and exit")
	if err := flags.Parse(arguments); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument %q\n", flags.Arg(0))
		return 2
	}
	if *showVersion {
		fmt.Fprintf(out, "helpbot-check %s\n", config.Version)
		return 0
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(errOut, "configuration invalid: %v\n", err)
		return 1
	}
	printSummary(out, cfg)

	directory := *dataDir
	if directory == "" {
		directory = state.DataDir()
	}
	if !checkRecords(out, errOut, directory) {
		return 1
	}
	return 0
}

// printSummary prints one line per feature resolution outcome plus the
// connection identity.
func printSummary(out io.Writer, cfg *config.Config) {
	fmt.Fprintf(out, "homeserver: %s\n", cfg.HomeserverURL())
	fmt.Fprintf(out, "bot user: %s\n", cfg.Username())
	fmt.Fprintf(out, "user agent: %s\n", cfg.UserAgent())
	fmt.Fprintf(out, "admins: %d\n", len(cfg.Admins()))

	fmt.Fprintln(out, toggleLine("unit conversions", cfg.UnitConversionsEnabled()))
	fmt.Fprintln(out, featureLine("github search", cfg.GithubSearch().Enabled(),
		fmt.Sprintf("%d repos", len(cfg.GithubSearch().Value().Repos))))
	fmt.Fprintln(out, featureLine("link keywords", cfg.LinkKeywords().Enabled(),
		fmt.Sprintf("%d matchers, %d links",
			len(cfg.LinkKeywords().Value().Matchers), len(cfg.LinkKeywords().Value().Links))))
	fmt.Fprintln(out, featureLine("text expansions", cfg.TextExpansions().Enabled(),
		fmt.Sprintf("%d entries", len(cfg.TextExpansions().Value()))))
	fmt.Fprintln(out, featureLine("unit conversion exclusions", cfg.UnitConversionExclusions().Enabled(),
		fmt.Sprintf("%d units", len(cfg.UnitConversionExclusions().Value()))))
	fmt.Fprintln(out, featureLine("corrections", cfg.Corrections().Enabled(),
		fmt.Sprintf("%d spellings, %d excluded rooms",
			len(cfg.Corrections().Value().Spellings), len(cfg.Corrections().Value().Exclusions))))
	fmt.Fprintln(out, featureLine("group pings", cfg.GroupPings().Enabled(),
		fmt.Sprintf("%d groups, %d eligible users",
			len(cfg.GroupPings().Value().Groups), len(cfg.GroupPings().Value().EligibleUsers))))
	fmt.Fprintln(out, featureLine("help rooms", cfg.HelpRooms().Enabled(),
		fmt.Sprintf("%d rooms", len(cfg.HelpRooms().Value()))))
	fmt.Fprintln(out, featureLine("ban rooms", cfg.BanRooms().Enabled(),
		fmt.Sprintf("%d rooms", len(cfg.BanRooms().Value()))))
}

func toggleLine(name string, enabled bool) string {
	if enabled {
		return name + ": enabled"
	}
	return name + ": disabled"
}

func featureLine(name string, enabled bool, detail string) string {
	if enabled {
		return name + ": enabled (" + detail + ")"
	}
	return name + ": disabled"
}

// checkRecords inspects every state record kind under directory.
func checkRecords(out, errOut io.Writer, directory string) bool {
	valid := checkRecord(out, errOut, "session", state.SessionStore(directory))
	valid = checkRecord(out, errOut, "listener", state.ListenerStore(directory)) && valid
	valid = checkRecord(out, errOut, "responder", state.ResponderStore(directory)) && valid
	return valid
}

// checkRecord reports on one state record. A missing record is stat'd
// rather than loaded: loading would create the default record, and this
// command must never write.
func checkRecord[T any](out, errOut io.Writer, name string, store *state.Store[T]) bool {
	if _, err := os.Stat(store.Path()); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(out, "%s state: not yet created (first run)\n", name)
		return true
	}
	if _, err := store.Load(); err != nil {
		fmt.Fprintf(errOut, "%s state: %v\n", name, err)
		return false
	}
	fmt.Fprintf(out, "%s state: ok\n", name)
	return true
}
