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
	"log"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	return config
}

func main() {
	asciiLogo := `
 █████╗ ██╗   ██╗██╗     ██╗███╗   ██╗██████╗ ███████╗██╗  ██╗
██╔══██╗██║   ██║██║     ██║████╗  ██║██╔══██╗██╔════╝╚██╗██╔╝
███████║██║   ██║██║     ██║██╔██╗ ██║██║  ██║█████╗   ╚███╔╝
██╔══██║╚██╗ ██╔╝██║     ██║██║╚██╗██║██║  ██║██╔══╝   ██╔██╗
██║  ██║ ╚████╔╝ ███████╗██║██║ ╚████║██████╔╝███████╗██╔╝ ██╗
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝╚═╝  ╚═══╝╚═════╝ ╚══════╝╚═╝  ╚═╝
Self-balancing ordered index with an interactive AVL shell [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	InitializeColors()
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Launches the interactive AVL tree shell",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Shell opens a console over an empty integer tree`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runShell(loadConfigOrDefault()); err != nil {
				log.Fatalf("Error running shell: %v", err)
			}
		},
	}

	var cmdContacts = &cobra.Command{
		Use:   "contacts",
		Short: "Print the sample contact directory",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Contacts loads the sample contacts into a balanced tree and searches it by name`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			out := cmd.OutOrStdout()

			directory := NewContactDirectory(config.Contacts)
			for _, c := range sampleContacts {
				directory.Add(c)
			}
			directory.Render(out)

			name := cmd.Flag("search").Value.String()
			if directory.Search(name) {
				fmt.Fprintf(out, "\n%sContact %s found in the directory.%s\n", Green, name, Reset)
			} else {
				fmt.Fprintf(out, "\n%sContact %s not found in the directory.%s\n", Warning, name, Reset)
			}
		},
	}

	cmdContacts.Flags().String("search", "Gavi", "contact name to look up")

	var cmdStocks = &cobra.Command{
		Use:   "stocks",
		Short: "Print the sample stock price board",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Stocks keeps quotes ordered by price and re-sorts them as prices change`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()

			board := NewStockBoard()
			for _, s := range sampleStocks {
				board.Add(s.Symbol, s.Price)
			}
			board.Render(out)

			board.Update("AAPL", 155.00)
			board.Update("TSLA", 720.50)
			fmt.Fprintf(out, "\n%sAfter price updates:%s\n", Info, Reset)
			board.Render(out)

			if cheapest, err := board.Cheapest(); err == nil {
				fmt.Fprintf(out, "\nCheapest: %s at $ %.2f\n", cheapest.Symbol, cheapest.Price)
			}
			if priciest, err := board.Priciest(); err == nil {
				fmt.Fprintf(out, "Priciest: %s at $ %.2f\n", priciest.Symbol, priciest.Price)
			}
		},
	}

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Time inserts, searches and removals on a large tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Bench runs the insert, search and remove phases and validates the tree after each one`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			bench := loadConfigOrDefault().Bench
			flags := cmd.Flags()

			if flags.Changed("inserts") {
				bench.InsertCount, _ = flags.GetInt("inserts")
			}
			if flags.Changed("searches") {
				bench.SearchCount, _ = flags.GetInt("searches")
			}
			if flags.Changed("removes") {
				bench.RemoveCount, _ = flags.GetInt("removes")
			}
			if flags.Changed("seed") {
				bench.Seed, _ = flags.GetUint64("seed")
			}
			if noProgress, _ := flags.GetBool("no-progress"); noProgress {
				bench.ShowProgress = false
			}

			for _, result := range runBenchmarks(cmd.OutOrStdout(), bench) {
				if !result.Passed() {
					os.Exit(1)
				}
			}
		},
	}

	cmdBench.Flags().Int("inserts", 0, "number of random values to insert")
	cmdBench.Flags().Int("searches", 0, "number of lookups to run")
	cmdBench.Flags().Int("removes", 0, "number of values to remove")
	cmdBench.Flags().Uint64("seed", 0, "random seed, 0 picks one from the clock")
	cmdBench.Flags().Bool("no-progress", false, "hide the progress bars")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlindex usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avlindex CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage(loadConfigOrDefault().Display.MarkdownWidth))
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Print avlindex settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings shows the effective configuration from ~/.avlindex.yaml`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings(cmd.OutOrStdout())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlindex version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avlindex",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the shell when no subcommand is provided
			if err := runShell(loadConfigOrDefault()); err != nil {
				log.Fatalf("Error running shell: %v", err)
			}
		},
	}
	rootCmd.AddCommand(cmdShell, cmdContacts, cmdStocks, cmdBench, cmdUsage, cmdSettings, cmdVersion)
	rootCmd.Execute()
}
