package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagLevel      int
	flagDifficulty string
	flagNoGhost    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run in the local terminal",
	Long: `Start a run in the local terminal.

Controls:
  Left/Right or h/l - Move piece
  Up or x           - Rotate clockwise
  Z                 - Rotate counter-clockwise
  Down or j         - Soft drop
  Space             - Hard drop
  P/Esc             - Pause
  R                 - Restart (when paused or after game over)
  Q/Ctrl+C          - Quit

Difficulty presets:
  easy   - Slower gravity, gentler speedup
  normal - Default tuning
  hard   - Faster gravity, steeper speedup, fewer lock resets
  fixed  - No speedup, gravity stays at the start level

Examples:
  blockfall play
  blockfall play --difficulty hard
  blockfall play --level 5 --no-ghost
  blockfall play --seed 42 --fps 30
  blockfall play --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags. The root command registers them
// too since bare "blockfall" starts a run.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	addRulesFlags(cmd)
}

// addRulesFlags registers the flags that shape the game rules. The serve
// command takes these as well so remote sessions share the tuning.
func addRulesFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagLevel, "level", 0, "Start level (0 = config default)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagNoGhost, "no-ghost", false, "Hide the landing preview")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "blockfall"})

	rules, err := loadRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size, fall back to conservative defaults
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - the run still works
		store = nil
	}

	runErr := tui.Run(rules, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadRules builds the engine rules from the config file, the difficulty
// preset and the play flags, in that order.
func loadRules() (engine.Rules, error) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		return engine.Rules{}, err
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return engine.Rules{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&gameCfg, preset)
	}

	if flagLevel > 0 {
		gameCfg.Scoring.StartLevel = flagLevel
	}
	if flagNoGhost {
		gameCfg.View.Ghost = false
	}

	rules := gameCfg.Rules()
	if err := rules.Validate(); err != nil {
		return engine.Rules{}, fmt.Errorf("invalid rules: %w", err)
	}

	return rules, nil
}
