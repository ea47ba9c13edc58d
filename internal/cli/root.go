// Package cli wires configuration, the template service and the terminal UI
// behind a cobra command tree.
//
// Configuration is layered, highest priority first:
//  1. persistent flags (--base-url, --output, --timeout, ...)
//  2. GITIGNORE_TUI_<SECTION>_<KEY> environment variables
//  3. the TOML config file (--config, GITIGNORE_TUI_CONFIG, or the per-user default)
//  4. built-in defaults
package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"gitignore-tui/internal/catalog"
	"gitignore-tui/internal/config"
	"gitignore-tui/internal/logging"
	"gitignore-tui/internal/output"
	"gitignore-tui/internal/ui"
	"gitignore-tui/internal/usage"
)

const envPrefix = "GITIGNORE_TUI"

// app holds what every subcommand shares
type app struct {
	v          *viper.Viper
	configPath string
	cfg        *config.Config
}

// Execute runs the command tree against the process arguments
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}

// NewRootCommand builds the command tree. Each call gets its own viper
// instance so tests can run commands side by side.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "gitignore-tui",
		Short: "Browse gitignore templates and build a .gitignore interactively",
		Long: `gitignore-tui browses the gitignore.io template catalog in a four-panel
terminal interface: fuzzy search, a ranked template list, the current
selection and a live preview of the merged .gitignore.

Without a subcommand the interactive interface starts. The list, get and
test subcommands work without a terminal and are meant for scripting.`,
		Version:       config.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
		RunE: a.runTUI,
	}
	root.SetVersionTemplate("gitignore-tui version {{.Version}}\n")

	a.bindFlags(root.PersistentFlags())
	root.AddCommand(
		a.newListCommand(),
		a.newGetCommand(),
		a.newTestCommand(),
		a.newConfigCommand(),
	)
	return root
}

func (a *app) client() *catalog.Client {
	return catalog.New(a.cfg.API.BaseURL, a.cfg.API.UserAgent, a.cfg.API.Timeout.Duration)
}

func (a *app) runTUI(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("an interactive terminal is required; use 'list' or 'get' for scripting")
	}
	cfg := a.cfg

	if err := logging.Configure(cfg.Logging.File); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
	defer logging.Close()
	logging.SetTraceEnabled(cfg.Logging.Trace)
	log.Printf("gitignore-tui %s starting, catalog %s", config.Version, cfg.API.BaseURL)

	store := usage.NewStore(cfg.Usage.Path)
	if err := store.Load(); err != nil {
		log.Printf("usage: %v", err)
	}

	model := ui.NewModel(cfg, a.client(), store, output.NewWriter(cfg.Output.Path))

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	model.SetContext(ctx)
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		logging.Error(err)
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
