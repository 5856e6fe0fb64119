package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/allisonsierra/bomsmith/bomsmith"
	"github.com/allisonsierra/bomsmith/bomsmith/format"
)

var schemasCmd = &cobra.Command{
	Use:   "schemas",
	Short: "List the supported CycloneDX schema versions and serializations",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		printSchemas(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(schemasCmd)
}

func printSchemas(w io.Writer) {
	var formats []string
	for _, f := range format.AvailableFormats {
		formats = append(formats, f.String()+" ("+f.MediaType()+")")
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Version", "XML Namespace", "Formats"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, v := range bomsmith.SupportedVersions() {
		table.Append([]string{v.String(), v.Namespace(), strings.Join(formats, ", ")})
	}
	table.Render()
}
