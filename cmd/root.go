package cmd

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/keywarden/keywarden/internal/config"
	"github.com/keywarden/keywarden/internal/keyring"
	"github.com/keywarden/keywarden/tui"
)

var (
	configFlag      string
	homedirFlag     string
	outdirFlag      string
	defaultKeyFlag  string
	armorFlag       bool
	splashFlag      bool
	coloredFlag     bool
	tickRateFlag    int
	detailLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "keywarden",
	Short: "Terminal user interface for GnuPG",
	Long: `keywarden is a terminal front-end for managing GnuPG keys:
list, export, import, sign, edit, delete and send keys from an
interactive table.

Press '?' inside the interface for the key binding reference, or ':'
to run commands directly.

Examples:
  keywarden                         # launch the interface
  keywarden --homedir ~/.gnupg     # use a specific GnuPG home
  keywarden --armor                # ASCII armored exports
  keywarden keys list sec          # list secret keys on stdout`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}
	ring, err := newKeyring(cfg)
	if err != nil {
		return err
	}

	m, err := tui.NewMainModel(ring, cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("interface error: %w", err)
	}
	if m, ok := final.(tui.MainModel); ok {
		if err := tui.SaveHistory(m.History()); err != nil {
			logrus.WithError(err).Warn("saving command history")
		}
	}
	return nil
}

func init() {
	rootCmd.RunE = runRoot
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", "", "configuration file path")
	flags.StringVar(&homedirFlag, "homedir", "", "GnuPG home directory")
	flags.StringVarP(&outdirFlag, "outdir", "o", "", "output directory for exported keys")
	flags.StringVarP(&defaultKeyFlag, "default-key", "d", "", "default key for signing")
	flags.BoolVarP(&armorFlag, "armor", "a", false, "enable ASCII armored output")
	flags.BoolVar(&splashFlag, "splash", false, "show the splash screen on startup")
	flags.BoolVar(&coloredFlag, "colored", false, "enable the colored interface style")
	flags.IntVarP(&tickRateFlag, "tick-rate", "t", 0, "tick rate in milliseconds")
	flags.StringVar(&detailLevelFlag, "detail-level", "", "detail level (minimum/standard/full)")
}

// loadConfig reads the configuration file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	path := configFlag
	if path == "" {
		path = config.DefaultPath()
	}
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := rootCmd.PersistentFlags()
	if flags.Changed("homedir") {
		cfg.GPG.Homedir = homedirFlag
	}
	if flags.Changed("outdir") {
		cfg.GPG.Outdir = outdirFlag
	}
	if flags.Changed("default-key") {
		cfg.GPG.DefaultKey = defaultKeyFlag
	}
	if flags.Changed("armor") {
		cfg.GPG.Armor = armorFlag
	}
	if flags.Changed("splash") {
		cfg.General.Splash = splashFlag
	}
	if flags.Changed("colored") {
		cfg.General.Colored = coloredFlag
	}
	if flags.Changed("tick-rate") {
		cfg.General.TickRateMs = tickRateFlag
	}
	if flags.Changed("detail-level") {
		cfg.General.DetailLevel = detailLevelFlag
	}
	return cfg, nil
}

// setupLogging sends log output to the configured file, or discards it
// so log lines never corrupt the interface.
func setupLogging(cfg *config.Config) error {
	if cfg.General.LogFile == "" {
		logrus.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(cfg.General.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	logrus.SetOutput(f)
	logrus.SetLevel(logrus.DebugLevel)
	return nil
}

func newKeyring(cfg *config.Config) (keyring.Keyring, error) {
	return keyring.NewGPG(keyring.Options{
		Homedir:    cfg.GPG.Homedir,
		Outdir:     cfg.GPG.Outdir,
		Armor:      cfg.GPG.Armor,
		DefaultKey: cfg.GPG.DefaultKey,
	})
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
