package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/initializ/signup/config"
	"github.com/initializ/signup/internal/tui"
	"github.com/initializ/signup/internal/tui/steps"
	"github.com/initializ/signup/logging"
	"github.com/initializ/signup/submission"
	"github.com/initializ/signup/wizard"
)

// defaultLogFile receives logs of a verbose interactive session, since the
// terminal belongs to the UI.
const defaultLogFile = "signup.log"

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, err
	}
	if themeOverride != "" {
		cfg.Theme = themeOverride
	}
	if outputFile != "" {
		cfg.Output = outputFile
	}
	return cfg, nil
}

// newLogger returns a logger that never writes to the terminal: logs go to
// the configured file, to signup.log when verbose, or nowhere.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	file := cfg.Log.File
	if file == "" && verbose {
		file = defaultLogFile
	}
	if file == "" {
		return zap.NewNop(), nil
	}
	return logging.New(logging.Options{Level: cfg.Log.Level, File: file, Verbose: verbose})
}

func runWizard(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("signup needs an interactive terminal; use 'signup validate --file' for scripted checks")
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var out io.Writer
	if cfg.Output != "" {
		f, err := submission.OpenFile(cfg.Output)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	state := wizard.New(wizard.WithLogger(logger), wizard.WithDebounce(cfg.Debounce))
	defer state.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	theme := tui.DetectTheme(cfg.Theme)
	styles := tui.NewStyleSet(theme)
	wizardSteps := []tui.Step{
		steps.NewCredentialsStep(styles),
		steps.NewProfileStep(styles),
		steps.NewReviewStep(styles),
	}

	model := tui.NewWizardModel(ctx, theme, state, wizardSteps, submission.NewSink(logger, out), logger, appVersion)
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		model = model.WithSize(w, h)
	}

	logger.Info("wizard started", zap.String("theme", theme.Name), zap.Duration("debounce", cfg.Debounce))

	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	result, ok := final.(tui.WizardModel)
	if !ok {
		return fmt.Errorf("unexpected model type %T", final)
	}
	if err := result.Err(); err != nil {
		if errors.Is(err, tui.ErrCancelled) {
			fmt.Fprintln(cmd.OutOrStdout(), "Signup cancelled.")
			return nil
		}
		return err
	}

	rec := result.Record()
	fmt.Fprintf(cmd.OutOrStdout(), "Registered %s (%s)\n", rec.Email, rec.ID)
	if cfg.Output != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Record appended to %s\n", cfg.Output)
	}
	return nil
}
