package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vk/depgraph/internal/app"
)

// newCommand builds the subcommand that runs command against PATH arguments.
func newCommand(v *viper.Viper, errW io.Writer, command app.Command, short, long string) *cobra.Command {
	return &cobra.Command{
		Use:   string(command) + " [PATH...]",
		Short: short,
		Long:  long,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(v, args)
			if err != nil {
				return err
			}
			slog.Debug("CLI parser finished successfully.", "command", command, "paths", cfg.Paths)

			return app.NewApp(cmd.OutOrStdout(), errW, cfg).Run(cmd.Context(), command)
		},
	}
}

// buildConfig merges positional paths with the layered settings and
// validates the result.
func buildConfig(v *viper.Viper, args []string) (*app.Config, error) {
	paths := args
	if len(paths) == 0 {
		paths = v.GetStringSlice(keyPaths)
	}
	if len(paths) == 0 {
		paths = []string{"."}
	}

	cfg, err := app.NewConfig(app.Config{
		Paths:         paths,
		LogLevel:      v.GetString(keyLogLevel),
		LogFormat:     v.GetString(keyLogFormat),
		OutputFormat:  v.GetString(keyFormat),
		Pretty:        v.GetBool(keyPretty),
		MaxDepth:      v.GetInt(keyMaxDepth),
		Trace:         v.GetBool(keyTrace),
		TraceEndpoint: v.GetString(keyTraceEndpoint),
	})
	if err != nil {
		return nil, usageError(err)
	}
	return cfg, nil
}
