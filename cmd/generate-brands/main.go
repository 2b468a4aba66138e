package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"marketecho/generator"
	"marketecho/services"

	"github.com/apex/log"
	"github.com/spf13/cobra"
)

var (
	outPath string
	count   int
	seed    int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "generate-brands",
	Short: "Generate the synthetic brand dataset",
	Long:  "generate-brands writes a JSON dataset of synthetic brand visibility records keyed by normalized brand name.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if count <= 0 {
			return fmt.Errorf("--count must be positive, got %d", count)
		}
		if !cmd.Flags().Changed("seed") {
			seed = time.Now().UnixNano()
		}

		log.Infof("Generating %d brands (seed %d)", count, seed)
		brands := generator.New(seed).Generate(count)

		if dir := filepath.Dir(outPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
		}
		if err := services.WriteDataset(outPath, brands); err != nil {
			return err
		}

		log.Infof("Generated %d brands, written to %s", len(brands), outPath)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "data/brands.json", "Output file")
	rootCmd.Flags().IntVarP(&count, "count", "n", generator.DefaultTarget, "Number of brands to generate")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (defaults to the current time)")
}
