// glider is a side-scrolling arcade game played in the terminal.
//
// Usage:
//
//	glider play              - Play in the current terminal
//	glider serve             - Start SSH server for remote play
//	glider scores            - Show the best recorded runs
//	glider config            - Print the default configuration YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.glider/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glider",
	Short: "Glider - Dodge the barriers, chase the high score",
	Long: `Glider is a terminal arcade game: keep your glider airborne with
well-timed flaps and slip through the gaps in scrolling barriers.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View the best recorded runs
  config   - Print the default configuration YAML

Examples:
  glider play
  glider play --difficulty hard
  glider serve --ssh :2222
  glider scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.glider/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
