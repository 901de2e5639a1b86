package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/ecruz165/fsattr/pkg/fsattr"
	"github.com/olekukonko/tablewriter"
)

// statusRow is one rendered query result.
type statusRow struct {
	Path     string `json:"path"`
	Status   string `json:"status"`
	Exists   bool   `json:"exists"`
	Folder   bool   `json:"folder"`
	ReadOnly bool   `json:"readOnly"`
}

func newStatusRow(path string, status uint64) statusRow {
	return statusRow{
		Path:     path,
		Status:   formatStatus(status),
		Exists:   fsattr.IsValid(status),
		Folder:   fsattr.IsFolder(status),
		ReadOnly: fsattr.IsReadOnly(status),
	}
}

func formatStatus(status uint64) string {
	return fmt.Sprintf("0x%016x", status)
}

// renderStatus writes rows in the given format: table, json or raw.
func renderStatus(w io.Writer, format string, rows []statusRow) error {
	switch format {
	case "", "table":
		printTable(w, rows)
		return nil
	case "json":
		out, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling status: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "raw":
		for _, r := range rows {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", r.Status, r.Path); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want table, json or raw)", format)
	}
}

func printTable(w io.Writer, rows []statusRow) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Path", "Status", "Exists", "Folder", "Read-only"})

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, r := range rows {
		table.Append([]string{
			r.Path,
			r.Status,
			strconv.FormatBool(r.Exists),
			strconv.FormatBool(r.Folder),
			strconv.FormatBool(r.ReadOnly),
		})
	}
	table.Render()
}
