package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/threadtone/threadtone/internal/catalog"
	"github.com/threadtone/threadtone/internal/colour"
	"github.com/threadtone/threadtone/internal/image"
	"github.com/threadtone/threadtone/internal/quantize"
)

var (
	// Quantize command flags
	quantizeColors       int
	quantizeStrength     float64
	quantizeNoDither     bool
	quantizeDistance     string
	quantizeThreshold    float64
	quantizeCatalogs     []string
	quantizeSeed         int64
	quantizeFormat       string
	quantizeOutput       string
	quantizeMaxDimension int
)

// quantizeCmd represents the quantize command
var quantizeCmd = &cobra.Command{
	Use:   "quantize <image>",
	Short: "Reduce an image to a palette of real thread colours",
	Long: `Quantize an image against one or more embroidery thread catalogs.

The image's colours are clustered in Lab space using k-means++, optionally
dithered with Floyd-Steinberg error diffusion, and each representative
colour is matched to the closest physical thread. The output lists the
matched threads with coverage, estimated length and cost.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Quantize to 16 thread colours (default) using the built-in catalogs
  threadtone quantize design.png

  # Limit the palette to 8 colours and disable dithering
  threadtone quantize --colors 8 --no-dither design.jpg

  # Use Lab-Euclidean distance instead of CIEDE2000
  threadtone quantize --distance lab design.png

  # Match only against DMC plus a custom catalog file
  threadtone quantize --catalog DMC --catalog sulky.json design.png

  # Deterministic clustering and JSON output to a file
  threadtone quantize --seed 42 --format json --output result.json design.png`,
	Args: cobra.ExactArgs(1),
	RunE: runQuantize,
}

func init() {
	quantizeCmd.Flags().IntVarP(&quantizeColors, "colors", "c", quantize.DefaultColorLimit, "number of thread colours (2-20)")
	quantizeCmd.Flags().Float64Var(&quantizeStrength, "dither-strength", quantize.DefaultDitheringStrength, "error diffusion strength (0.0-1.0)")
	quantizeCmd.Flags().BoolVar(&quantizeNoDither, "no-dither", false, "disable error diffusion")
	quantizeCmd.Flags().StringVar(&quantizeDistance, "distance", string(colour.AlgorithmCIEDE2000), "distance algorithm (euclidean, lab, ciede2000)")
	quantizeCmd.Flags().Float64Var(&quantizeThreshold, "quality-threshold", 0, "warn when overall quality is below this score (0-100)")
	quantizeCmd.Flags().StringSliceVar(&quantizeCatalogs, "catalog", nil, "catalog to match against: built-in name or JSON file (default: all built-ins)")
	quantizeCmd.Flags().Int64Var(&quantizeSeed, "seed", 0, "clustering random seed (0 = time-based)")
	quantizeCmd.Flags().StringVarP(&quantizeFormat, "format", "f", "table", "output format (table, json)")
	quantizeCmd.Flags().StringVarP(&quantizeOutput, "output", "o", "", "output file (default: stdout)")
	quantizeCmd.Flags().IntVar(&quantizeMaxDimension, "max-dimension", 1024, "downsample images whose longest side exceeds this (0 = never)")
}

// runQuantize executes the quantize command.
func runQuantize(cmd *cobra.Command, args []string) error {
	imagePath := args[0]
	verbose, _ := cmd.Flags().GetBool("verbose")

	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	set, err := resolveCatalogSet(quantizeCatalogs)
	if err != nil {
		return err
	}

	loader := image.NewFileLoader()
	img, err := loader.Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	img = image.Downsample(img, quantizeMaxDimension)

	params := quantize.Parameters{
		ColorLimit:        quantizeColors,
		DitheringStrength: quantizeStrength,
		EnableDithering:   !quantizeNoDither,
		QualityThreshold:  quantizeThreshold,
		Algorithm:         colour.DistanceAlgorithm(quantizeDistance),
		Seed:              quantizeSeed,
	}

	// Ctrl-C cancels the pipeline cooperatively.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var onProgress quantize.ProgressFunc
	if verbose {
		onProgress = func(p float64, stage string) {
			fmt.Fprintf(os.Stderr, "[%3.0f%%] %s\n", p*100, stage)
		}
	}

	quantizer := quantize.New(quantize.WithLogger(newLogger(verbose)))
	result, err := quantizer.Quantize(ctx, img, set, params, onProgress)
	if err != nil {
		return err
	}

	switch quantizeFormat {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return writeOutput(quantizeOutput, string(data)+"\n")
	case "table":
		return writeOutput(quantizeOutput, renderResult(result, quantizeOutput == ""))
	default:
		return fmt.Errorf("unknown format: %s (valid formats: table, json)", quantizeFormat)
	}
}

// resolveCatalogSet builds the matching set from --catalog args: each is a
// built-in catalog name or a path to a JSON catalog file. No args selects
// every built-in catalog.
func resolveCatalogSet(refs []string) (*catalog.Set, error) {
	if len(refs) == 0 {
		return catalog.Builtin(), nil
	}

	catalogs := make([]catalog.Catalog, 0, len(refs))
	for _, ref := range refs {
		if c, ok := catalog.ByName(ref); ok {
			catalogs = append(catalogs, c)
			continue
		}
		c, err := catalog.LoadFile(ref)
		if err != nil {
			return nil, fmt.Errorf("catalog %q is neither a built-in name nor a loadable file: %w", ref, err)
		}
		catalogs = append(catalogs, c)
	}
	return catalog.NewSet(catalogs...), nil
}

// renderResult formats the quantization result as a human-readable report.
func renderResult(result *quantize.Result, toTerminal bool) string {
	table := NewTable([]string{"", "Code", "Catalog", "Name", "Colour", "Pixels", "Coverage", "Length", "Cost", "Match"})
	for _, u := range result.Usage {
		table.AddRow([]string{
			swatch(u.Thread.RGB, toTerminal),
			u.Thread.Code,
			u.Thread.Catalog,
			u.Thread.Name,
			u.Thread.RGB.Hex(),
			fmt.Sprintf("%d", u.PixelCount),
			fmt.Sprintf("%.1f%%", u.Coverage),
			fmt.Sprintf("%.1fm", u.EstimatedLength),
			fmt.Sprintf("$%.2f", u.EstimatedCost),
			fmt.Sprintf("%.0f%%", matchSimilarity(result, u.Thread)),
		})
	}

	summary := fmt.Sprintf(
		"%d threads, %dx%d px, quality %.0f/100 (accuracy %.0f, clustering %.0f, dithering %.0f, matching %.0f), %.0fms\n",
		result.ThreadCount, result.Width, result.Height,
		result.Quality.Overall, result.Quality.ColorAccuracy, result.Quality.ClusteringQuality,
		result.Quality.DitheringQuality, result.Quality.ThreadMatchQuality,
		float64(result.ProcessingTime.Microseconds())/1000.0,
	)

	return table.Render() + "\n" + summary
}

// matchSimilarity finds the similarity the matcher reported for a thread.
func matchSimilarity(result *quantize.Result, thread catalog.ThreadColor) float64 {
	best := 0.0
	for _, m := range result.Palette {
		if m.Thread.Code == thread.Code && m.Thread.Catalog == thread.Catalog && m.Similarity > best {
			best = m.Similarity
		}
	}
	return best
}
