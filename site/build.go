package site

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/hanumantha123456/portfolio"
	"github.com/hanumantha123456/portfolio/content"
)

// DefaultAssetPatterns copies everything under the assets directory.
var DefaultAssetPatterns = []string{"**/*"}

// BuildOptions controls Build.
type BuildOptions struct {
	Profile   content.Profile
	OutputDir string
	// AssetsDir is copied into OutputDir. Empty skips the copy.
	AssetsDir string
	// AssetPatterns selects files under AssetsDir. Empty means DefaultAssetPatterns.
	AssetPatterns []string
	// Exclude drops files matching any of these patterns.
	Exclude []string
	// WasmURL is dropped from the page when CheckWasm rejects it.
	WasmURL string
	Now     time.Time
}

// BuildResult lists what Build wrote, relative to OutputDir.
type BuildResult struct {
	Page   string
	Assets []string
	// WasmURL is the module the page loads, empty when it has no script.
	WasmURL string
	// WasmErr says why a configured module was left out.
	WasmErr error
}

// Build renders index.html in the light theme and copies the selected
// assets next to it. The browser host re-applies the visitor's stored
// theme on load. A page that fails to render leaves any existing
// index.html untouched.
func Build(r *Renderer, opts BuildOptions) (*BuildResult, error) {
	if opts.OutputDir == "" {
		return nil, fmt.Errorf("%w: empty output directory", portfolio.ErrInvalidInput)
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	res := &BuildResult{Page: "index.html"}
	wasm := opts.WasmURL
	if err := CheckWasm(opts.AssetsDir, wasm); err != nil {
		res.WasmErr = err
		wasm = ""
	}

	data, err := NewPageData(opts.Profile, PageOptions{
		Theme:   portfolio.ThemeLight,
		Now:     opts.Now,
		WasmURL: wasm,
	})
	if err != nil {
		return nil, err
	}
	res.WasmURL = data.WasmURL

	var page bytes.Buffer
	if err := r.Render(&page, data); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(opts.OutputDir, res.Page), page.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("writing page: %w", err)
	}

	if opts.AssetsDir == "" {
		return res, nil
	}
	assets, err := MatchAssets(os.DirFS(opts.AssetsDir), opts.AssetPatterns, opts.Exclude)
	if err != nil {
		return nil, err
	}
	for _, rel := range assets {
		if rel == res.Page {
			continue
		}
		if err := CopyFile(filepath.Join(opts.AssetsDir, filepath.FromSlash(rel)), filepath.Join(opts.OutputDir, filepath.FromSlash(rel))); err != nil {
			return nil, fmt.Errorf("copying %s: %w", rel, err)
		}
		res.Assets = append(res.Assets, rel)
	}
	return res, nil
}

// MatchAssets returns the regular files in fsys matching any include pattern
// and no exclude pattern, in lexical order without duplicates.
func MatchAssets(fsys fs.FS, include, exclude []string) ([]string, error) {
	if len(include) == 0 {
		include = DefaultAssetPatterns
	}
	seen := make(map[string]bool)
	var out []string
	for _, pattern := range include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("%w: bad asset pattern %q", portfolio.ErrInvalidInput, pattern)
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] || excluded(m, exclude) {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}
	sort.Strings(out)
	return out, nil
}

func excluded(rel string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(p, path.Base(rel)); err == nil && ok {
			return true
		}
	}
	return false
}

// CopyFile copies src to dst, creating dst's directory as needed.
func CopyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
