package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/scrollway/audio"
	"github.com/lixenwraith/scrollway/config"
	"github.com/lixenwraith/scrollway/content"
	"github.com/lixenwraith/scrollway/core"
	"github.com/lixenwraith/scrollway/engine"
	"github.com/lixenwraith/scrollway/gui"
	"github.com/lixenwraith/scrollway/overlay"
	"github.com/lixenwraith/scrollway/phase"
	"github.com/lixenwraith/scrollway/render"
	"github.com/lixenwraith/scrollway/replay"
	"github.com/lixenwraith/scrollway/status"
	"github.com/lixenwraith/scrollway/terminal"
)

// options are the persistent flags shared by every subcommand
type options struct {
	configPath string
	mode       string
	debug      bool
	noAudio    bool
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "scrollway",
		Short:         "Scroll and swipe driven progress experience",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&opts.mode, "mode", "", "input mode: desktop|mobile")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "write logs/scrollway.log and show the status row")
	root.PersistentFlags().BoolVar(&opts.noAudio, "no-audio", false, "disable audio cues")

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newWindowCmd(opts))
	root.AddCommand(newReplayCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	return root
}

// loadConfig resolves defaults, file and environment, then applies explicit flags
func loadConfig(opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if opts.mode != "" {
		cfg.Mode = config.Mode(opts.mode)
	}
	if opts.debug {
		cfg.Debug = true
	}
	if opts.noAudio {
		cfg.Audio = false
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func loadContent(cfg config.Config) (content.Document, error) {
	if cfg.ContentPath == "" {
		return content.Default(), nil
	}
	return content.Load(cfg.ContentPath)
}

// session is the frontend-independent part of a run
type session struct {
	cfg   config.Config
	doc   content.Document
	reg   *status.Registry
	exp   *engine.Experience
	scene *render.OrbitScene
	cues  *audio.Cues
}

func newSession(opts *options) (*session, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	doc, err := loadContent(cfg)
	if err != nil {
		return nil, err
	}
	mapper, err := cfg.Tuning.Mapper()
	if err != nil {
		return nil, err
	}

	reg := status.NewRegistry()
	exp, err := engine.NewExperience(cfg, reg)
	if err != nil {
		return nil, err
	}
	s := &session{
		cfg:   cfg,
		doc:   doc,
		reg:   reg,
		exp:   exp,
		scene: render.NewOrbitScene(mapper, cfg.Tuning.MaxProgress),
	}

	exp.OnOverlayChange(func(state overlay.State) {
		log.Printf("final page %s", state)
	})
	if cfg.Audio {
		s.startAudio()
	}
	return s, nil
}

// startAudio wires cues to the experience hooks; failure leaves the run silent
func (s *session) startAudio() {
	cues := audio.NewCues()
	if err := cues.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
		return
	}
	s.cues = cues
	s.exp.OnPhaseChange(func(_, to phase.Phase) { cues.PhaseCue(to) })
	s.exp.OnOverlayChange(cues.OverlayCue)
}

func (s *session) toggleMute() {
	if s.cues != nil {
		s.cues.SetMuted(!s.cues.Muted())
	}
}

func (s *session) Close() {
	s.exp.Close()
	if s.cues != nil {
		s.cues.Cleanup()
	}
}

func logAction(l content.Link) {
	log.Printf("action %q -> %s", l.Label, l.URL)
}

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run in the terminal (mouse wheel scrolls, drag swipes in mobile mode)",
		RunE: func(_ *cobra.Command, _ []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("run needs an interactive terminal, see 'scrollway window' or 'scrollway replay'")
			}
			if f := setupLogging(opts.debug); f != nil {
				defer f.Close()
			}

			s, err := newSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("create screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init screen: %w", err)
			}
			defer screen.Fini()
			core.SetCrashScreen(screen)

			renderer := render.NewRenderer(screen, s.doc, s.scene)
			if s.cfg.Debug {
				renderer.SetStatus(s.reg)
			}

			app := terminal.NewApp(screen, s.exp, renderer, s.cfg)
			app.OnAction(logAction)
			app.BindKey('m', s.toggleMute)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx)
		},
	}
}

func newWindowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Run in a desktop window with wheel and touch input",
		RunE: func(_ *cobra.Command, _ []string) error {
			if f := setupLogging(opts.debug); f != nil {
				defer f.Close()
			}

			s, err := newSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			renderer := render.NewBufferRenderer(0, 0, s.doc, s.scene)
			if s.cfg.Debug {
				renderer.SetStatus(s.reg)
			}
			game := gui.NewGame(s.exp, renderer, s.cfg)
			game.OnAction(logAction)
			return gui.Run(game, "Scrollway")
		},
	}
}

func newReplayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <script.yaml>...",
		Short: "Play input scripts headlessly and report each frame",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(false)
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			failed := 0
			for _, path := range args {
				script, err := replay.Load(path)
				if err != nil {
					return err
				}
				tr, err := replay.Run(script, cfg)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				_, _ = fmt.Fprint(cmd.OutOrStdout(), replay.Render(tr))
				if tr.Failed() {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d scripts failed", failed, len(args))
			}
			return nil
		},
	}
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return config.Encode(cmd.OutOrStdout(), cfg)
		},
	}
}
