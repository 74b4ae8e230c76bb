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
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avlindex.yaml"

type BenchConfig struct {
	InsertCount  int    `yaml:"insert_count"`
	SearchCount  int    `yaml:"search_count"`
	RemoveCount  int    `yaml:"remove_count"`
	Seed         uint64 `yaml:"seed"` // 0 picks a time based seed
	ShowProgress bool   `yaml:"show_progress"`
}

type ContactsConfig struct {
	BloomBits   uint `yaml:"bloom_bits"`
	BloomHashes uint `yaml:"bloom_hashes"`
}

type DisplayConfig struct {
	MarkdownWidth int `yaml:"markdown_width"`
	HelpWrap      int `yaml:"help_wrap"`
}

type Config struct {
	Bench    BenchConfig    `yaml:"bench"`
	Contacts ContactsConfig `yaml:"contacts"`
	Display  DisplayConfig  `yaml:"display"`
}

var defaultConfig = Config{
	Bench: BenchConfig{
		InsertCount:  100000,
		SearchCount:  1000000,
		RemoveCount:  100000,
		Seed:         0,
		ShowProgress: true,
	},
	Contacts: ContactsConfig{
		BloomBits:   4096,
		BloomHashes: 4,
	},
	Display: DisplayConfig{
		MarkdownWidth: 80,
		HelpWrap:      72,
	},
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.avlindex.yaml. A missing or broken file yields the
// defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := defaultConfig
		return &config, nil
	}
	return loadConfigFrom(configPath)
}

// loadConfigFrom overlays the file at path on the defaults, so keys left
// out of the file keep their default values.
func loadConfigFrom(path string) (*Config, error) {
	config := defaultConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return &config, nil
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		fallback := defaultConfig
		return &fallback, fmt.Errorf("invalid config %s: %w", path, err)
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

func displaySettings(w io.Writer) {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to get config path: %v\n", err)
		return
	}

	fresh := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")
		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Fprintf(w, "❌ %v\n", err)
			return
		}
		fresh = true
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Fprintf(w, "⚠️  %v. Using default settings.\n\n", err)
	}

	fmt.Fprintf(w, "🔧 avlindex Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")

	if fresh {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", configPath)
	}

	seed := "time based"
	if config.Bench.Seed != 0 {
		seed = fmt.Sprintf("%d", config.Bench.Seed)
	}

	fmt.Fprintf(w, "⏱  %sBenchmark:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • insert_count: %d\n", config.Bench.InsertCount)
	fmt.Fprintf(w, "  • search_count: %d\n", config.Bench.SearchCount)
	fmt.Fprintf(w, "  • remove_count: %d\n", config.Bench.RemoveCount)
	fmt.Fprintf(w, "  • seed: %s\n", seed)
	fmt.Fprintf(w, "  • show_progress: %t\n\n", config.Bench.ShowProgress)

	fmt.Fprintf(w, "📇 %sContacts:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • bloom_bits: %d\n", config.Contacts.BloomBits)
	fmt.Fprintf(w, "  • bloom_hashes: %d\n\n", config.Contacts.BloomHashes)

	fmt.Fprintf(w, "🖥  %sDisplay:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • markdown_width: %d\n", config.Display.MarkdownWidth)
	fmt.Fprintf(w, "  • help_wrap: %d\n", config.Display.HelpWrap)
}
