package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nagygr/shortcuts/internal/config"
	"github.com/nagygr/shortcuts/internal/logging"
	"github.com/nagygr/shortcuts/internal/userdata"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the registry and settings",
	Long: `Run diagnostic checks: the registry parses, every pattern compiles with two
capture groups, every config file exists, and the settings are valid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		checkSettings(out)

		report, err := userdata.CheckRegistry(out)
		if err != nil {
			return &reportedError{err: err}
		}

		fmt.Fprintf(out, "\n%d application(s): %d failed, %d missing config file(s)\n",
			report.Applications, report.Failures, report.Missing)
		if report.Failures > 0 {
			return &reportedError{err: fmt.Errorf("%d application(s) failed checks", report.Failures)}
		}
		return nil
	},
}

func checkSettings(w io.Writer) {
	fmt.Fprintln(w, "Settings check:")
	fmt.Fprintf(w, "  [INFO] %s\n", config.FilePath())

	if mode, err := config.Mode(); err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", config.KeyMode, err)
	} else {
		fmt.Fprintf(w, "  [ OK ] %s = %s\n", config.KeyMode, mode)
	}

	if _, err := logging.ParseLevel(config.LogLevel()); err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", config.KeyLogLevel, err)
	} else {
		fmt.Fprintf(w, "  [ OK ] %s = %s\n", config.KeyLogLevel, config.LogLevel())
	}
}
