package cli

import (
	"fmt"

	"github.com/ecruz165/fsattr/pkg/fsattr"
	"github.com/spf13/cobra"
)

var copyTimes bool

func init() {
	copyAttrsCmd.Flags().BoolVar(&copyTimes, "times", false, "Also copy the last-modified time")
	rootCmd.AddCommand(copyAttrsCmd)
}

var copyAttrsCmd = &cobra.Command{
	Use:   "copy-attrs <source> <destination>",
	Short: "Copy the read-only flag (and optionally mtime) between entries",
	Long: `Make the read-only flag of destination match source. With --times the
last-modified time is copied as well. If the time cannot be set after the
read-only flag was applied, the flag change is kept.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, dst := args[0], args[1]
		if err := fsattr.ApplyAttributes([]byte(src), []byte(dst), copyTimes); err != nil {
			return fmt.Errorf("could not copy attributes from %s to %s: %w", src, dst, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Copied attributes from %s to %s\n", src, dst)
		return nil
	},
}
