package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hanumantha123456/portfolio"
	"github.com/hanumantha123456/portfolio/site"
)

const defaultWasmPkg = "./cmd/portfolio-wasm"

var (
	wasmPkg    string
	wasmAssets string
)

// goTool runs the go command with extra environment entries and returns its
// combined output.
var goTool = func(ctx context.Context, env []string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "go", args...)
	cmd.Env = append(os.Environ(), env...)
	return cmd.CombinedOutput()
}

var wasmCmd = &cobra.Command{
	Use:   "wasm",
	Short: "Compile the browser host into the assets directory",
	Long: `Compiles the browser host for GOOS=js GOARCH=wasm and copies the Go
distribution's wasm_exec.js next to it, so the page can load both from the
assets directory. Run it from the module root, or through go generate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		if wasmAssets != "" {
			cfg.Site.AssetsDir = wasmAssets
		}
		_, err = buildWasm(cmd.Context(), logger, wasmPkg, cfg.Site.AssetsDir, cfg.Site.WasmURL)
		return err
	},
}

// buildWasm writes the wasm module and its loader into assetsDir and returns
// the module's path. wasmURL names the module when it is a bare asset name.
func buildWasm(ctx context.Context, logger portfolio.Logger, pkg, assetsDir, wasmURL string) (string, error) {
	if assetsDir == "" {
		return "", fmt.Errorf("%w: no assets directory to write the wasm host to", portfolio.ErrInvalidInput)
	}
	name := site.DefaultWasmName
	if site.IsAssetName(wasmURL) {
		name = wasmURL
	}
	out, err := filepath.Abs(filepath.Join(assetsDir, filepath.FromSlash(name)))
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return "", fmt.Errorf("creating assets directory: %w", err)
	}

	if output, err := goTool(ctx, []string{"GOOS=js", "GOARCH=wasm"}, "build", "-o", out, pkg); err != nil {
		return "", fmt.Errorf("compiling %s: %w\n%s", pkg, err, output)
	}

	goroot, err := goTool(ctx, nil, "env", "GOROOT")
	if err != nil {
		return "", fmt.Errorf("locating GOROOT: %w", err)
	}
	loader, err := findWasmExec(strings.TrimSpace(string(goroot)))
	if err != nil {
		return "", err
	}
	if err := site.CopyFile(loader, filepath.Join(assetsDir, site.WasmExecJS)); err != nil {
		return "", fmt.Errorf("copying %s: %w", site.WasmExecJS, err)
	}

	logger.Info("Wasm host built", "module", out, "loader", loader)
	return out, nil
}

// findWasmExec locates wasm_exec.js, which moved from misc/wasm to lib/wasm
// in Go 1.24.
func findWasmExec(goroot string) (string, error) {
	for _, dir := range []string{"lib", "misc"} {
		p := filepath.Join(goroot, dir, "wasm", site.WasmExecJS)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: %s under %s", portfolio.ErrNotFound, site.WasmExecJS, goroot)
}

func init() {
	wasmCmd.Flags().StringVar(&wasmPkg, "pkg", defaultWasmPkg, "package of the browser host")
	wasmCmd.Flags().StringVar(&wasmAssets, "assets", "", "assets directory override")
	rootCmd.AddCommand(wasmCmd)
}
