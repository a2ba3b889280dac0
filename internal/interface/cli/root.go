package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/YoshitsuguKoike/helloworld/internal/app/config"
	infraConfig "github.com/YoshitsuguKoike/helloworld/internal/infra/config"
	"github.com/YoshitsuguKoike/helloworld/internal/interface/cli/version"
)

// globalConfig holds the loaded configuration for all commands
var globalConfig config.Config = config.Default()

// appFs is the filesystem used by all commands
var appFs = afero.NewOsFs()

func NewRoot() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:          "helloworld",
		Short:        "Multiplatform Hello World greeter",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Priority: --log-level > ENV > setting.yaml > defaults
			cfg, loadErr := infraConfig.LoadSettings(appFs, infraConfig.BaseDir())
			if loadErr != nil {
				cfg = config.Default()
			}
			globalConfig = cfg

			level := cfg.StderrLevel()
			if logLevel != "" {
				level = logLevel
			}
			InitGlobalLogger(level)

			if loadErr != nil {
				Warn("failed to load settings, using defaults: %v", loadErr)
			}
			if path := cfg.SettingPath(); path != "" {
				Debug("settings read from %s", path)
			}
			Debug("config source=%s home=%s journal=%q", cfg.ConfigSource(), cfg.Home(), cfg.JournalPath())
			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error { return c.Help() },
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Stderr log level (debug, info, warn, error)")

	cmd.AddCommand(newGreetCmd())
	cmd.AddCommand(newBatchCmd())
	cmd.AddCommand(version.NewCommand())
	return cmd
}
