package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// ErrEmptyProfile is returned when a content file parses but names nobody.
var ErrEmptyProfile = errors.New("content: profile has no intro name")

// Parse reads a content file: YAML frontmatter holding the profile fields,
// followed by the About text as Markdown.
func Parse(r io.Reader) (Profile, error) {
	var p Profile
	body, err := frontmatter.Parse(r, &p)
	if err != nil {
		return Profile{}, fmt.Errorf("content: failed to parse frontmatter: %w", err)
	}
	p.About = strings.TrimSpace(string(body))
	if strings.TrimSpace(p.Intro.Name) == "" {
		return Profile{}, ErrEmptyProfile
	}
	return p, nil
}

// Load parses the content file at path. An empty path or a missing file
// yields Default().
func Load(path string) (Profile, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Profile{}, fmt.Errorf("content: failed to read %s: %w", path, err)
	}
	p, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Encode writes p in the format Parse reads.
func Encode(w io.Writer, p Profile) error {
	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("content: failed to encode profile: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("content: failed to encode profile: %w", err)
	}
	buf.WriteString("---\n\n")
	if about := strings.TrimSpace(p.About); about != "" {
		buf.WriteString(about)
		buf.WriteString("\n")
	}
	_, err := w.Write(buf.Bytes())
	return err
}
