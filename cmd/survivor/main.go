// survivor is a terminal asteroid shooter: steer the ship, shoot asteroids
// and survive the round clock.
//
// Usage:
//
//	survivor                 - Play (same as "survivor play")
//	survivor play            - Play in this terminal
//	survivor serve           - Start SSH server for remote play
//	survivor scores          - Show the last runs ranking
//	survivor config          - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.survivor/scores.db)
//	--config <path>       - Load gameplay tuning from a YAML file
//	--difficulty <tier>   - Preselect easy, normal or hard
//	--log-file <path>     - Log file for the terminal game
//
// Every flag can also be set through a SURVIVOR_ environment variable,
// e.g. SURVIVOR_DB or SURVIVOR_LOG_FILE.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "survivor",
	Short: "Space Survivor - shoot asteroids in your terminal",
	Long: `Space Survivor is a terminal asteroid shooter. Steer your ship,
shoot asteroids for points, grab the bonus star and stay alive until the
round clock runs out.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  scores   - View the last runs ranking
  config   - Print the effective game configuration

Examples:
  survivor
  survivor play --difficulty hard --name Ace
  survivor serve --ssh :2222
  survivor scores --plain`,
	Run: runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Int("fps", 60, "Tick rate (frames per second)")
	flags.Int64("seed", 0, "RNG seed (0 = random based on time)")
	flags.String("db", "~/.survivor/scores.db", "Path to scores database")
	flags.String("config", "", "Path to custom game config YAML")
	flags.String("difficulty", "", "Preselected difficulty: easy, normal, hard")
	flags.String("log-file", "~/.survivor/survivor.log", "Log file for the terminal game")

	for _, name := range []string{"fps", "seed", "db", "config", "difficulty", "log-file"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	viper.SetEnvPrefix("SURVIVOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
