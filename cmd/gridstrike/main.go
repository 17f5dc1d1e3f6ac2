// gridstrike is a terminal tile-grid game: move a token across a 5x5 board
// of colored tiles, clear them, and watch the board refill.
//
// Usage:
//
//	gridstrike list              - List game variants
//	gridstrike play [variant]    - Play locally
//	gridstrike serve             - Start SSH server for remote play
//	gridstrike config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible boards
//	--config <path>  - Use a specific config file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the game variants
	_ "github.com/vovakirdan/gridstrike/internal/games/gridstrike"
)

var (
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridstrike",
	Short: "GridStrike - clear a tile grid in your terminal",
	Long: `GridStrike puts you on a 5x5 board of colored tiles. Move one cell at a
time, attack to clear tiles, and the board refills on a steady beat.

Available commands:
  list     - Show the game variants
  play     - Play a variant
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  gridstrike play
  gridstrike play gridstrike_flood --seed 42
  gridstrike serve --ssh :2222
  gridstrike config --config ./my.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
