package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/vovakirdan/space-survivor/internal/audio"
	"github.com/vovakirdan/space-survivor/internal/core"
	"github.com/vovakirdan/space-survivor/internal/game"
	"github.com/vovakirdan/space-survivor/internal/platform/tui"
	"github.com/vovakirdan/space-survivor/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start Space Survivor in this terminal.

Controls:
  Left/A, Right/D  - Turn
  Up/W             - Boost
  Space            - Fire
  Mouse            - Click the on-screen buttons
  N/S/R            - New game, scores, rename (start screen)
  1/2/3, Enter     - Pick difficulty, start the round
  Y/N              - Play again or back to the start screen
  Esc/Ctrl+C       - Quit

Examples:
  survivor play
  survivor play --difficulty easy --name Ace
  survivor play --mute --seed 42
  survivor play --config ./my-survivor.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the flags of the play command on cmd.
// The root command shares them since it plays by default.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Pilot name (default from config)")
	cmd.Flags().Bool("mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, _ []string) {
	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		name = viper.GetString("name")
	}
	mute, _ := cmd.Flags().GetBool("mute")
	mute = mute || viper.GetBool("mute")

	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := newFileLogger(viper.GetString("log-file"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, logging disabled\n", err)
		logger = nil
	} else {
		defer logFile.Close()
	}

	store, err := storage.Open(viper.GetString("db"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: viper.GetInt("fps"),
		Seed:     viper.GetInt64("seed"),
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	session := game.NewSession(gameCfg, rt, store)
	if name != "" {
		session.SetPlayerName(name)
	}

	player := newAudioPlayer(mute, gameCfg.Audio.Volume, logger)

	if logger != nil {
		logger.Info("starting game",
			"player", session.PlayerName(),
			"difficulty", session.Difficulty(),
			"size", fmt.Sprintf("%dx%d", width, height),
			"seed", rt.Seed,
		)
	}

	runErr := tui.Run(session, player, logger, rt)

	player.Close()
	if err := store.Close(); err != nil && logger != nil {
		logger.Warn("could not close scores database", "error", err)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newAudioPlayer starts the speaker, falling back to silence when muted or
// when no audio device is available.
func newAudioPlayer(mute bool, volume float64, logger *log.Logger) audio.Player {
	if mute {
		return audio.Nop{}
	}

	m := audio.NewManager(volume)
	if err := m.Init(); err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, playing muted", "error", err)
		}
		return audio.Nop{}
	}
	return m
}
