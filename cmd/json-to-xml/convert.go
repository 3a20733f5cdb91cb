package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	lib "github.com/formbridge/json-to-xml"
	"github.com/formbridge/json-to-xml/config"
	"github.com/formbridge/json-to-xml/jsontree"
	"github.com/formbridge/json-to-xml/xmlmap"
)

var (
	flagFormat string
	flagRoot   string
	flagOutput string
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.json>",
	Short: "Convert a JSON file to XML or DOCX",
	Long: `Convert reads a JSON file and writes the converted artifact.

Examples:
  json-to-xml convert data.json
  json-to-xml convert data.json --root report
  json-to-xml convert data.json --format docx --output data.docx`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVar(&flagFormat, "format", "xml", "Output format: xml|docx")
	convertCmd.Flags().StringVar(&flagRoot, "root", "", "Root element name (default from config)")
	convertCmd.Flags().StringVar(&flagOutput, "output", "", "Output file (default stdout for xml, <base>.docx for docx)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	config.ApplyDefaults(&config.Config)

	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	value, err := jsontree.Parse(content, config.Config.Limits.MaxDepth)
	if err != nil {
		return fmt.Errorf("invalid JSON format: %w", err)
	}
	rootName := flagRoot
	if rootName == "" {
		rootName = config.Config.Convert.DefaultRootElement
	}

	switch flagFormat {
	case "xml":
		xmlStr, err := xmlmap.ToXML(value, rootName)
		if err != nil {
			return err
		}
		if flagOutput == "" {
			fmt.Print(xmlStr)
			return nil
		}
		return os.WriteFile(flagOutput, []byte(xmlStr), 0o644)
	case "docx":
		buf, err := lib.ConvertToDocx(value, rootName)
		if err != nil {
			return err
		}
		out := flagOutput
		if out == "" {
			out = strings.TrimSuffix(args[0], ".json") + ".docx"
		}
		return os.WriteFile(out, buf, 0o644)
	default:
		return fmt.Errorf("unknown format %q (want xml or docx)", flagFormat)
	}
}
