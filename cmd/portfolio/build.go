package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanumantha123456/portfolio/content"
	"github.com/hanumantha123456/portfolio/site"
)

var (
	buildOutput    string
	buildWasmFirst bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write a static copy of the site",
	Long: `Renders index.html and copies the selected assets into the output
directory. The static page starts in the light theme; the browser host applies
the visitor's stored theme on load. With --wasm the browser host is compiled
into the assets directory first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		if buildOutput != "" {
			cfg.Site.OutputDir = buildOutput
		}

		if buildWasmFirst {
			if _, err := buildWasm(cmd.Context(), logger, wasmPkg, cfg.Site.AssetsDir, cfg.Site.WasmURL); err != nil {
				return err
			}
		}

		profile, err := content.Load(cfg.Site.ContentFile)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}

		renderer, err := site.NewRenderer()
		if err != nil {
			return err
		}

		res, err := site.Build(renderer, site.BuildOptions{
			Profile:       profile,
			OutputDir:     cfg.Site.OutputDir,
			AssetsDir:     cfg.Site.AssetsDir,
			AssetPatterns: cfg.Site.AssetPatterns,
			Exclude:       cfg.Site.Exclude,
			WasmURL:       cfg.Site.WasmURL,
		})
		if err != nil {
			return fmt.Errorf("building site: %w", err)
		}
		if res.WasmErr != nil {
			logger.Warn("Page built without browser host; run `portfolio wasm` or pass --wasm", "wasm_url", cfg.Site.WasmURL, "error", res.WasmErr)
		}

		logger.Info("Site built", "output_dir", cfg.Site.OutputDir, "page", res.Page, "assets", len(res.Assets), "wasm_url", res.WasmURL)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output directory override")
	buildCmd.Flags().BoolVar(&buildWasmFirst, "wasm", false, "compile the browser host into the assets directory first")
	buildCmd.Flags().StringVar(&wasmPkg, "wasm-pkg", defaultWasmPkg, "package of the browser host")
	rootCmd.AddCommand(buildCmd)
}
