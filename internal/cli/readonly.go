package cli

import (
	"fmt"

	"github.com/ecruz165/fsattr/pkg/fsattr"
	"github.com/spf13/cobra"
)

var readOnlyValue bool

func init() {
	setReadOnlyCmd.Flags().BoolVar(&readOnlyValue, "value", true, "Read-only state to apply (false makes the entry writable)")
	rootCmd.AddCommand(setReadOnlyCmd)
}

var setReadOnlyCmd = &cobra.Command{
	Use:   "set-readonly <path>",
	Short: "Set or clear the read-only flag",
	Long: `Remove the owner write permission of a file or directory, or restore it
with --value=false. Other permission bits are left unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if err := fsattr.ApplyReadOnly([]byte(path), readOnlyValue); err != nil {
			return fmt.Errorf("could not set read-only=%t on %s: %w", readOnlyValue, path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set read-only=%t on %s\n", readOnlyValue, path)
		return nil
	},
}
