package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/allisonsierra/bomsmith/bomsmith"
	"github.com/allisonsierra/bomsmith/internal"
	"github.com/allisonsierra/bomsmith/internal/version"
)

var versionOutputFormat string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "show the version",
	Run:   printVersion,
}

func init() {
	versionCmd.Flags().StringVarP(&versionOutputFormat, "output", "o", "text", "format to show version information (available=[text, json])")

	rootCmd.AddCommand(versionCmd)
}

func printVersion(_ *cobra.Command, _ []string) {
	versionInfo := version.FromBuild()

	var specVersions []string
	for _, v := range bomsmith.SupportedVersions() {
		specVersions = append(specVersions, v.String())
	}

	switch versionOutputFormat {
	case "text":
		fmt.Println("Application:          ", internal.ApplicationName)
		fmt.Println("Version:              ", versionInfo.Version)
		fmt.Println("BuildDate:            ", versionInfo.BuildDate)
		fmt.Println("GitCommit:            ", versionInfo.GitCommit)
		fmt.Println("GitDescription:       ", versionInfo.GitDescription)
		fmt.Println("Platform:             ", versionInfo.Platform)
		fmt.Println("GoVersion:            ", versionInfo.GoVersion)
		fmt.Println("Compiler:             ", versionInfo.Compiler)
		fmt.Println("Supported CycloneDX:  ", specVersions)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", " ")
		err := enc.Encode(&struct {
			version.Version
			Application  string   `json:"application"`
			SpecVersions []string `json:"supportedSpecVersions"`
		}{
			Version:      versionInfo,
			Application:  internal.ApplicationName,
			SpecVersions: specVersions,
		})
		if err != nil {
			fmt.Printf("failed to show version information: %+v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("unsupported output format: %s\n", versionOutputFormat)
		os.Exit(1)
	}
}
