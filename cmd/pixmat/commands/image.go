package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anjomro/remote-matrix/internal/printer"
	"github.com/anjomro/remote-matrix/pkg/bitmap"
	"github.com/anjomro/remote-matrix/pkg/matrix"
)

var (
	imageOut       string
	imageDuration  float64
	imageMaxWidth  int
	imageMaxHeight int
	imageAt        string
)

var imageCmd = &cobra.Command{
	Use:   "image <file>",
	Short: "Convert a single image file into a content document",
	Long: `Convert a PNG, GIF, JPEG or BMP image into a one-frame content
document.

Examples:
  # Convert and write to a file
  pixmat image logo.png --out content.json

  # Scale down to fit a 64x32 matrix and place at an offset
  pixmat image logo.png --max-width 64 --max-height 32 --at 4,0`,
	Args: cobra.ExactArgs(1),
	RunE: runImage,
}

func init() {
	imageCmd.Flags().StringVarP(&imageOut, "out", "o", "", "Output file (stdout if omitted)")
	imageCmd.Flags().Float64VarP(&imageDuration, "duration", "d", 0, "Frame duration in seconds")
	imageCmd.Flags().IntVar(&imageMaxWidth, "max-width", 0, "Scale down to fit this width")
	imageCmd.Flags().IntVar(&imageMaxHeight, "max-height", 0, "Scale down to fit this height")
	imageCmd.Flags().StringVar(&imageAt, "at", "", "Placement as x,y (default 0,0)")
	rootCmd.AddCommand(imageCmd)
}

func runImage(cmd *cobra.Command, args []string) error {
	b, err := bitmap.Open(args[0])
	if err != nil {
		return printer.Error(
			fmt.Sprintf("failed to load image: %v", err),
			"Supported formats: PNG, GIF, JPEG, BMP.",
		)
	}

	if imageMaxWidth > 0 || imageMaxHeight > 0 {
		if b, err = bitmap.Fit(b, imageMaxWidth, imageMaxHeight); err != nil {
			return fmt.Errorf("failed to scale image: %w", err)
		}
	}

	at := matrix.Origin
	if imageAt != "" {
		if _, err := fmt.Sscanf(imageAt, "%d,%d", &at.X, &at.Y); err != nil {
			return printer.Error(
				fmt.Sprintf("invalid --at value %q", imageAt),
				"Expected x,y - for example: --at 4,0",
			)
		}
	}

	piece, err := b.Piece(at)
	if err != nil {
		return err
	}

	content := matrix.NewContent()
	frame := content.Current()
	frame.Duration = imageDuration
	frame.Add(piece)

	return writeContent(cmd, content, imageOut)
}
