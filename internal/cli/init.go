package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nagygr/shortcuts/internal/userdata"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config directory and the default registry",
	Long: `Create the config directory and write the default registry if none exists.
Existing files are left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		dir, err := userdata.GetConfigDir()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Initializing %s\n", dir)

		if err := userdata.InitRegistry(out); err != nil {
			return fmt.Errorf("initializing registry: %w", err)
		}

		path, err := userdata.GetRegistryPath()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nEdit %s to add applications.\n", path)
		return nil
	},
}
