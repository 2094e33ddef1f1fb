package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hanumantha123456/portfolio"
)

const (
	// WasmExecJS is the loader script the Go distribution ships for wasm
	// modules. The page loads it from the assets directory.
	WasmExecJS = "wasm_exec.js"
	// DefaultWasmName is the module `portfolio wasm` writes into the assets
	// directory.
	DefaultWasmName = "portfolio.wasm"
)

// IsAssetName reports whether url names a file in the assets directory
// rather than a site path or an absolute URL.
func IsAssetName(url string) bool {
	return url != "" && !strings.HasPrefix(url, "/") && !strings.Contains(url, "://")
}

// CheckWasm reports whether a page pointing at wasmURL can load it. The
// loader script must be in assetsDir, and so must the module itself when
// wasmURL is a bare asset name. An empty wasmURL needs nothing.
func CheckWasm(assetsDir, wasmURL string) error {
	if wasmURL == "" {
		return nil
	}
	if assetsDir == "" {
		return fmt.Errorf("%w: no assets directory to load %s from", portfolio.ErrInvalidInput, WasmExecJS)
	}

	required := []string{WasmExecJS}
	if IsAssetName(wasmURL) {
		required = append(required, wasmURL)
	}
	for _, name := range required {
		info, err := os.Stat(filepath.Join(assetsDir, filepath.FromSlash(name)))
		if err != nil {
			return fmt.Errorf("wasm asset %s: %w", name, err)
		}
		if !info.Mode().IsRegular() {
			return fmt.Errorf("%w: wasm asset %s is not a file", portfolio.ErrInvalidInput, name)
		}
	}
	return nil
}
