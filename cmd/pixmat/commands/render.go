package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/anjomro/remote-matrix/internal/printer"
	"github.com/anjomro/remote-matrix/internal/scene"
	"github.com/anjomro/remote-matrix/pkg/matrix"
)

var (
	renderScene string
	renderOut   string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a YAML scene file into a content document",
	Long: `Render a declarative YAML scene file into the JSON content
document a remote matrix display consumes.

Image files referenced by the scene are resolved relative to the scene
file's directory.

Examples:
  # Write the document to a file
  pixmat render --scene scene.yml --out content.json

  # Print the document to stdout
  pixmat render --scene scene.yml`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderScene, "scene", "s", "", "Scene file to render (required)")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file (stdout if omitted)")
	renderCmd.MarkFlagRequired("scene")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	s, err := scene.Load(renderScene)
	if err != nil {
		return printer.Error(
			fmt.Sprintf("failed to load scene: %v", err),
			"Check the scene file syntax against the documented format.",
		)
	}

	content, err := s.Build(filepath.Dir(renderScene))
	if err != nil {
		return fmt.Errorf("failed to build content: %w", err)
	}

	return writeContent(cmd, content, renderOut)
}

// writeContent saves the document to path, or prints it to the command's
// stdout when path is empty.
func writeContent(cmd *cobra.Command, content *matrix.Content, path string) error {
	if path == "" {
		text, err := matrix.ToJSON(content)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}

	if err := matrix.Save(content, path); err != nil {
		return err
	}
	printer.Success("wrote %s (%d frames)\n", path, content.Len())
	return nil
}
