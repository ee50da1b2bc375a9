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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".rbshell.yaml"

type InterpreterConfig struct {
	Tokenizer string `yaml:"tokenizer"` // "plain" or "shell"
	Prompt    string `yaml:"prompt"`
}

type OutputConfig struct {
	Color bool `yaml:"color"`
}

type CacheConfig struct {
	Enabled    bool          `yaml:"enabled"`
	Expiration time.Duration `yaml:"expiration"`
	Cleanup    time.Duration `yaml:"cleanup"`
}

type FilterConfig struct {
	Bits   uint `yaml:"bits"`
	Hashes uint `yaml:"hashes"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Interpreter InterpreterConfig `yaml:"interpreter"`
	Output      OutputConfig      `yaml:"output"`
	Cache       CacheConfig       `yaml:"cache"`
	Filter      FilterConfig      `yaml:"filter"`
	Log         LogConfig         `yaml:"log"`
}

var defaultConfig = Config{
	Interpreter: InterpreterConfig{
		Tokenizer: TokenizerPlain,
	},
	Cache: CacheConfig{
		Enabled:    true,
		Expiration: 5 * time.Minute,
		Cleanup:    10 * time.Minute,
	},
	Filter: FilterConfig{
		Bits:   1 << 16,
		Hashes: 4,
	},
	Log: LogConfig{
		Level: "info",
	},
}

// Validate rejects settings the interpreter cannot run with.
func (c *Config) Validate() error {
	switch c.Interpreter.Tokenizer {
	case TokenizerPlain, TokenizerShell:
	default:
		return fmt.Errorf("unknown tokenizer %q (want %q or %q)", c.Interpreter.Tokenizer, TokenizerPlain, TokenizerShell)
	}
	if c.Filter.Bits == 0 || c.Filter.Hashes == 0 {
		return errors.New("filter bits and hashes must be positive")
	}
	if c.Cache.Enabled && c.Cache.Expiration <= 0 {
		return errors.New("cache expiration must be positive when the cache is enabled")
	}
	return nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfigFrom reads the configuration at path. Keys absent from the file
// keep their default values. A missing file yields the defaults.
func LoadConfigFrom(path string) (*Config, error) {
	config := defaultConfig

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &config, nil
}

func createDefaultConfigFile(path string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// displaySettings prints the effective configuration, creating a default
// config file at path first if none exists.
func displaySettings(w io.Writer, path string, config *Config) error {
	created := false
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := createDefaultConfigFile(path); err != nil {
			return err
		}
		created = true
	}

	fmt.Fprintf(w, "rbshell configuration\n")
	fmt.Fprintf(w, "=====================\n\n")
	if created {
		fmt.Fprintf(w, "Config file: %s (newly created)\n\n", path)
	} else {
		fmt.Fprintf(w, "Config file: %s\n\n", path)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	if config.Interpreter.Tokenizer == TokenizerPlain {
		fmt.Fprintf(w, "\nTip: set interpreter.tokenizer to %q to allow quoted keys and values.\n", TokenizerShell)
	}
	return nil
}
