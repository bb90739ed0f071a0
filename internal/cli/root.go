package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nagygr/shortcuts/internal/branding"
	"github.com/nagygr/shortcuts/internal/config"
	"github.com/nagygr/shortcuts/internal/interactive"
	"github.com/nagygr/shortcuts/internal/logging"
	"github.com/nagygr/shortcuts/internal/pipeline"
	"github.com/nagygr/shortcuts/internal/registry"
	"github.com/nagygr/shortcuts/internal/render"
	"github.com/nagygr/shortcuts/internal/userdata"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// logger is replaced in PersistentPreRunE once settings are loaded.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` extracts keyboard shortcuts from application config files
using the patterns listed in its registry, and prints them as text or HTML.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	PersistentPreRunE:  setup,
	RunE:               runRoot,
}

func init() {
	// "help" is an ordinary unrecognized argument, not a subcommand.
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd == rootCmd {
			printHelp(cmd.OutOrStdout())
			return
		}
		defaultHelp(cmd, args)
	})
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	defer func() { _ = logger.Sync() }()

	err := rootCmd.Execute()
	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// setup loads settings and builds the logger for every command.
func setup(cmd *cobra.Command, args []string) error {
	config.Load()
	l, err := logging.New(config.LogLevel())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; logging disabled\n", err)
		return nil
	}
	logger = l
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 1 && (strings.HasPrefix(args[0], "-h") || strings.HasPrefix(args[0], "--help")) {
		printHelp(out)
		return nil
	}
	if len(args) != 0 {
		fmt.Fprintf(out, "Unrecognized command line arguments: [%s]\nRun with \"-h\" or \"--help\" for help.\n",
			strings.Join(args, ", "))
		return nil
	}

	mode, err := config.Mode()
	if err != nil {
		return err
	}
	p, err := loadPipeline(out, mode)
	if err != nil {
		return err
	}
	return interactive.Run(p, mode, cmd.InOrStdin(), out)
}

func printHelp(w io.Writer) {
	fmt.Fprintf(w, "%s\n\nThe default config:\n\n%s\n", registry.HelpText, registry.DefaultDocument)
}

// reportedError wraps an error whose rendering has already been written to
// the command output, so Execute does not print it again.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// loadPipeline loads the registry for the resolved home directory. A load
// failure is rendered to w in mode and returned as a reportedError.
func loadPipeline(w io.Writer, mode render.Mode) (*pipeline.Pipeline, error) {
	home, err := userdata.GetHome()
	if err != nil {
		return nil, err
	}

	p := pipeline.New(home, logger)
	if err := p.LoadRegistry(); err != nil {
		fmt.Fprint(w, pipeline.LoadError(mode, err))
		return nil, &reportedError{err: err}
	}
	return p, nil
}
