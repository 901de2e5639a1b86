package cli

import (
	"fmt"

	"github.com/ecruz165/fsattr/internal/config"
	"github.com/ecruz165/fsattr/pkg/fsattr"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statCmd)
}

var statCmd = &cobra.Command{
	Use:   "stat <path>...",
	Short: "Show existence, folder and read-only status",
	Long: `Query each path and print its attribute status. A missing path is not an
error; it is reported with every flag unset.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := make([]statusRow, 0, len(args))
		for _, path := range args {
			status, err := fsattr.GetStat([]byte(path))
			if err != nil {
				return fmt.Errorf("querying %s: %w", path, err)
			}
			rows = append(rows, newStatusRow(path, status))
		}
		return renderStatus(cmd.OutOrStdout(), config.Output(), rows)
	},
}
