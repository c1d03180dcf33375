// Package cli provides the command-line interface for threadtone.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/threadtone/threadtone/internal/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "threadtone",
	Short: "Convert images into embroidery thread palettes",
	Long: `Threadtone reduces an image to a bounded palette of real embroidery
thread colours drawn from manufacturer catalogs.

It clusters the image's colours in a perceptual colour space, optionally
applies error-diffusion dithering to preserve smooth gradients, and matches
each representative colour to the closest physical thread, reporting match
confidence, per-thread coverage and estimated thread consumption.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(quantizeCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(catalogsCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}

// newLogger builds the pipeline logger: debug to stderr when verbose,
// silent otherwise.
func newLogger(verbose bool) hclog.Logger {
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "threadtone",
			Output: os.Stderr,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "threadtone",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// writeOutput writes content to the given file, or stdout when path is
// empty.
func writeOutput(path, content string) error {
	if path == "" {
		fmt.Print(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
