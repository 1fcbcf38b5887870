package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vk/depgraph/internal/app"
)

// Configuration keys. Flags, DEPGRAPH_* environment variables, and the config
// file all use these names.
const (
	keyConfig        = "config"
	keyLogLevel      = "log-level"
	keyLogFormat     = "log-format"
	keyFormat        = "format"
	keyPretty        = "pretty"
	keyMaxDepth      = "max-depth"
	keyTrace         = "trace"
	keyTraceEndpoint = "trace-endpoint"
	keyPaths         = "paths"
)

const envPrefix = "DEPGRAPH"

// defaultConfigName is looked up in the working directory when --config is
// not given.
const defaultConfigName = ".depgraph"

// Execute parses args and runs the selected command. Command results go to
// outW; help text, logs, and traces go to errW.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	root := newRootCommand(outW, errW)
	root.SetArgs(args)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	if errors.Is(err, app.ErrInvalidTopology) {
		// check has already printed the result.
		return &ExitError{Code: exitFailure}
	}
	if cmd == root {
		// Unknown subcommands and similar parse failures.
		return usageError(err)
	}
	return err
}

// newRootCommand builds the command tree with its own viper instance, so
// repeated invocations do not share state.
func newRootCommand(outW, errW io.Writer) *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "depgraph",
		Short: "Resolve dependency order from manifest files",
		Long: `depgraph reads item declarations from HCL, YAML, or JSON manifests and
resolves them into a dependency order or an unfolded dependency tree.`,
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v)
		},
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := root.PersistentFlags()
	flags.String(keyConfig, "", "Config file (default ./.depgraph.yaml if present)")
	flags.String(keyLogLevel, "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.String(keyLogFormat, "text", "Log output format. Options: 'text' or 'json'.")
	flags.StringP(keyFormat, "o", "text", "Output format. Options: 'text', 'json', 'yaml'.")
	flags.Bool(keyPretty, false, "Draw the tree with box characters and colors (text output only).")
	flags.Int(keyMaxDepth, 0, "Limit the rendered tree depth. 0 renders every level.")
	flags.Bool(keyTrace, false, "Export OpenTelemetry spans as JSON to stderr.")
	flags.String(keyTraceEndpoint, "", "Export OpenTelemetry spans to this OTLP/HTTP endpoint.")
	bindFlags(v, flags)

	root.AddCommand(
		newCommand(v, errW, app.CommandOrder, "Print items in dependency order",
			"Print every item after all of its dependencies, one per line."),
		newCommand(v, errW, app.CommandTree, "Print the unfolded dependency tree",
			"Print each item nested under the items it depends on. Items repeated\nbecause of a cycle are marked and not expanded."),
		newCommand(v, errW, app.CommandCheck, "Validate that the manifests can be ordered",
			"Exit with status 1 when the dependencies contain a cycle or have no root."),
	)
	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		// BindPFlag only fails for a nil flag.
		_ = v.BindPFlag(f.Name, f)
	})
}

// initConfig layers environment variables and the config file under the flags.
func initConfig(v *viper.Viper) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile := v.GetString(keyConfig); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return usageError(fmt.Errorf("failed to read config file %s: %w", cfgFile, err))
		}
		slog.Debug("Config file loaded.", "path", v.ConfigFileUsed())
		return nil
	}

	v.SetConfigName(defaultConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return usageError(fmt.Errorf("failed to read config file: %w", err))
	}
	slog.Debug("Config file loaded.", "path", v.ConfigFileUsed())
	return nil
}
