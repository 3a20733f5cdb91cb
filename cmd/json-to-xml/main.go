// Command json-to-xml runs the JSON conversion services or performs one-shot
// file conversions from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "json-to-xml",
	Short: "Convert uploaded JSON documents to XML or DOCX",
	Long: `json-to-xml hosts two HTTP services that turn uploaded JSON files into
downloadable artifacts: a pretty-printed XML document, or a DOCX rendering of
that XML. It can also convert a single file from the command line.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
