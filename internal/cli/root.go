package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ecruz165/fsattr/internal/branding"
	"github.com/ecruz165/fsattr/internal/buildinfo"
	"github.com/ecruz165/fsattr/internal/config"
	"github.com/ecruz165/fsattr/internal/logging"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var build buildinfo.Info

var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` reports whether a path exists, is a directory, or is read-only, and
changes or copies the read-only flag and last-modified time of files.

Status words use a fixed layout on every platform:
  bit 62 VALID, bit 61 FOLDER, bit 60 READ_ONLY.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		for key, name := range map[string]string{
			config.KeyLogLevel:  "log-level",
			config.KeyLogFormat: "log-format",
			config.KeyOutput:    "output",
		} {
			if err := viper.BindPFlag(key, cmd.Root().PersistentFlags().Lookup(name)); err != nil {
				return fmt.Errorf("binding --%s: %w", name, err)
			}
		}

		closer, err := logging.Init(logging.Config{
			Level:  config.LogLevel(),
			Format: config.LogFormat(),
			Output: config.LogOutput(),
		})
		if err != nil {
			// The config commands must keep working so a bad value can be fixed.
			if !isConfigCommand(cmd) {
				return fmt.Errorf("%w (fix it with '%s config set')", err, branding.CLIName())
			}
			closer, _ = logging.Init(logging.Config{
				Level:  config.Default(config.KeyLogLevel),
				Format: config.Default(config.KeyLogFormat),
				Output: config.Default(config.KeyLogOutput),
			})
			log.WithError(err).Warn("Invalid logging settings, using defaults")
		}
		logCloser = closer
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("log-format", "", "Log format: text or json")
	flags.StringP("output", "o", "", "Result format: table, json or raw")
}

func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == configCmd {
			return true
		}
	}
	return false
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	build = buildinfo.Info{Version: version, Commit: commit, Date: date}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
