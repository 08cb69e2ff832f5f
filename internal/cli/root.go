package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/wieldy/internal/version"
	"github.com/arthur-debert/wieldy/pkg/build"
	"github.com/arthur-debert/wieldy/pkg/config"
	"github.com/arthur-debert/wieldy/pkg/errors"
	"github.com/arthur-debert/wieldy/pkg/filesystem"
	"github.com/arthur-debert/wieldy/pkg/logging"
	"github.com/arthur-debert/wieldy/pkg/ui"
	"github.com/arthur-debert/wieldy/pkg/watch"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// rootOptions holds the flags shared by every command
type rootOptions struct {
	verbosity int
	compress  bool
	output    string
	workers   int
	format    string
	mirror    bool
}

// overrides returns the config keys set by flags given on the command line
func (o *rootOptions) overrides(flags *pflag.FlagSet) map[string]interface{} {
	overrides := make(map[string]interface{})
	if flags.Changed("compress") {
		overrides["compile.compress"] = o.compress
	}
	if flags.Changed("output") {
		overrides["build.output_dir"] = o.output
	}
	if flags.Changed("workers") {
		overrides["build.workers"] = o.workers
	}
	return overrides
}

func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.LoadConfiguration(config.Sources{Overrides: o.overrides(cmd.Flags())})
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "wieldy [flags] <files or directories...>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runBuild(cmd, opts, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVarP(&opts.compress, "compress", "c", false, MsgFlagCompress)
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", MsgFlagOutput)
	rootCmd.PersistentFlags().IntVarP(&opts.workers, "workers", "j", 0, MsgFlagWorkers)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "auto", MsgFlagFormat)

	rootCmd.Flags().BoolVarP(&opts.mirror, "mirror", "m", false, MsgFlagMirror)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newSyntaxCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

// Execute runs the command line and returns the process exit status
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		// Failed files were already reported with the build result
		if !errors.IsErrorCode(err, errors.ErrBuildFailed) {
			_ = ui.NewRenderer(ui.FormatAuto, os.Stderr).RenderError(err)
		}
		return 1
	}
	return 0
}

func runBuild(cmd *cobra.Command, opts *rootOptions, inputs []string) error {
	logger := logging.GetLogger("cli.build")

	format, err := ui.ParseFormat(opts.format)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
	}

	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}

	fs := filesystem.NewOS()
	builder := build.NewBuilder(fs)
	buildOpts := build.OptionsFromConfig(cfg, inputs)
	renderer := ui.NewRenderer(format, cmd.OutOrStdout())

	logger.Info().
		Strs("inputs", inputs).
		Bool("mirror", opts.mirror).
		Str("format", format.String()).
		Msg("Starting build")

	if opts.mirror {
		return runMirror(cmd, watch.New(builder, fs, buildOpts, cfg.Watch.Debounce), renderer, format)
	}

	result, err := builder.Run(cmd.Context(), buildOpts)
	if err != nil {
		return err
	}
	if err := renderer.RenderResult(result); err != nil {
		return err
	}
	if !result.OK() {
		return errors.Newf(errors.ErrBuildFailed, MsgErrBuildFailed, len(result.Failed)).
			WithDetail("failed", len(result.Failed))
	}
	return nil
}

func runMirror(cmd *cobra.Command, w *watch.Watcher, renderer ui.Renderer, format ui.Format) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w.OnBuild = func(result *build.Result) {
		_ = renderer.RenderResult(result)
		if format != ui.FormatJSON {
			fmt.Fprintln(cmd.ErrOrStderr(), MsgWatching)
		}
	}
	w.OnResult = func(result build.FileResult) {
		_ = renderer.RenderFileResult(result)
	}
	return w.Run(ctx)
}
