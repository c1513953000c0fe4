package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anjomro/remote-matrix/internal/printer"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <content.json>",
	Short: "Summarize a serialized content document",
	Long: `Parse a serialized content document and print a per-frame summary
of its elements.

Examples:
  pixmat inspect content.json`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	var doc struct {
		Type   string `json:"type"`
		Frames []struct {
			Type     string  `json:"type"`
			Duration float64 `json:"duration"`
			Elements []struct {
				Type   string `json:"type"`
				Width  int    `json:"width"`
				Height int    `json:"height"`
			} `json:"elements"`
		} `json:"frames"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return printer.Error(
			fmt.Sprintf("failed to parse document: %v", err),
			"Expected a JSON document produced by pixmat render or pixmat image.",
		)
	}

	if doc.Type != "matrix" {
		return printer.Error(fmt.Sprintf("not a matrix document: type %q", doc.Type))
	}

	printer.Heading("%s: %d frames\n", args[0], len(doc.Frames))
	for i, frame := range doc.Frames {
		printer.Info("frame %d (%.2fs): %d elements\n", i, frame.Duration, len(frame.Elements))
		for _, el := range frame.Elements {
			if el.Type == "image" {
				printer.Info("  - image %dx%d\n", el.Width, el.Height)
			} else {
				printer.Info("  - %s\n", el.Type)
			}
		}
	}

	return nil
}
