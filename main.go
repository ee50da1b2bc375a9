// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "0.3.0"

// options holds the global flags; empty values leave the config untouched.
type options struct {
	configPath string
	logLevel   string
	tokenizer  string
	color      bool
}

type session struct {
	log *logrus.Logger
	in  *Interpreter
}

// resolveConfig loads the config file and applies flag overrides.
func resolveConfig(cmd *cobra.Command, opts *options) (*Config, string, error) {
	path := opts.configPath
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return nil, "", fmt.Errorf("failed to resolve config path: %w", err)
		}
		path = p
	}

	config, err := LoadConfigFrom(path)
	if err != nil {
		logrus.Warnf("Failed to load configuration: %v. Using default settings.", err)
		cfg := defaultConfig
		config = &cfg
	}

	if opts.logLevel != "" {
		config.Log.Level = opts.logLevel
	}
	if opts.tokenizer != "" {
		config.Interpreter.Tokenizer = opts.tokenizer
	}
	if cmd.Flags().Changed("color") {
		config.Output.Color = opts.color
	}
	if err := config.Validate(); err != nil {
		return nil, "", err
	}
	return config, path, nil
}

func newSession(cmd *cobra.Command, opts *options, out io.Writer) (*session, error) {
	config, _, err := resolveConfig(cmd, opts)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(os.Stderr, config.Log.Level)
	if err != nil {
		return nil, err
	}

	in, err := NewInterpreter(NewStore(config), out, logger, config)
	if err != nil {
		return nil, err
	}
	return &session{log: logger, in: in}, nil
}

func main() {
	opts := &options{}

	runInteractive := func(cmd *cobra.Command, args []string) {
		s, err := newSession(cmd, opts, os.Stdout)
		if err != nil {
			logrus.Fatalf("Error starting rbshell: %v", err)
		}
		if err := s.in.Run(os.Stdin); err != nil {
			s.log.Fatalf("Error running commands: %v", err)
		}
	}

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Read tree commands from standard input",
		Args:  cobra.NoArgs,
		Run:   runInteractive,
	}

	var cmdExec = &cobra.Command{
		Use:   "exec <script>...",
		Short: "Run tree commands from one or more files",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			s, err := newSession(cmd, opts, os.Stdout)
			if err != nil {
				logrus.Fatalf("Error starting rbshell: %v", err)
			}

			var progress io.Writer
			if show, _ := cmd.Flags().GetBool("progress"); show {
				progress = os.Stderr
			}
			if err := NewScriptLoader(s.in, progress).Run(args); err != nil {
				s.log.Fatalf("Error running scripts: %v", err)
			}
		},
	}
	cmdExec.Flags().Bool("progress", false, "show a progress bar while scripts run")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print rbshell usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config, path, err := resolveConfig(cmd, opts)
			if err != nil {
				logrus.Fatalf("Error loading settings: %v", err)
			}
			if err := displaySettings(os.Stdout, path, config); err != nil {
				logrus.Fatalf("Error displaying settings: %v", err)
			}
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print rbshell version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "rbshell",
		Version: version,
		Short:   "Interactive red-black tree with duplicate keys",
		Args:    cobra.NoArgs,
		// Default to run command when no subcommand is provided
		Run: runInteractive,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/"+configFileName+")")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.StringVar(&opts.tokenizer, "tokenizer", "", "command tokenizer: plain or shell")
	flags.BoolVar(&opts.color, "color", false, "colour the tree dump")

	rootCmd.AddCommand(cmdRun, cmdExec, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
