package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest describes a project's bython.toml.
type Manifest struct {
	// Package name; optional, defaults to the directory name at load time.
	Name string
	// Root is the source root relative to the manifest, "." when omitted.
	Root string
	// MaxDiagnostics bounds the per-file diagnostic count for check runs.
	MaxDiagnostics int
	// Jobs is the worker count for directory runs, 0 means auto.
	Jobs int
}

var (
	// ErrPackageSectionMissing indicates that [package] is missing in a manifest.
	ErrPackageSectionMissing = errors.New("missing [package]")
)

type manifestFile struct {
	Package struct {
		Name string `toml:"name"`
		Root string `toml:"root"`
	} `toml:"package"`
	Check struct {
		MaxDiagnostics int `toml:"max_diagnostics"`
		Jobs           int `toml:"jobs"`
	} `toml:"check"`
}

// LoadManifest parses a bython.toml file.
func LoadManifest(path string) (Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}

	m := Manifest{
		Name:           strings.TrimSpace(cfg.Package.Name),
		Root:           strings.TrimSpace(cfg.Package.Root),
		MaxDiagnostics: cfg.Check.MaxDiagnostics,
		Jobs:           cfg.Check.Jobs,
	}
	if m.Name == "" {
		m.Name = filepath.Base(filepath.Dir(path))
	}
	if m.Root == "" {
		m.Root = "."
	}
	return m, nil
}

// ResolveSourceRoot resolves and validates the manifest's source root against
// the project root.
func ResolveSourceRoot(projectRoot, root string) (string, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		root = "."
	}
	if filepath.IsAbs(root) {
		return "", fmt.Errorf("invalid [package].root %q: must be relative", root)
	}
	clean := filepath.Clean(filepath.FromSlash(root))
	if clean == "." {
		clean = ""
	}
	rootPath := filepath.Join(projectRoot, clean)
	if !pathWithin(projectRoot, rootPath) {
		return "", fmt.Errorf("invalid [package].root %q: escapes project root", root)
	}
	info, err := os.Stat(rootPath)
	if err != nil {
		return "", fmt.Errorf("invalid [package].root %q: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("invalid [package].root %q: not a directory", root)
	}
	return rootPath, nil
}

func pathWithin(base, target string) bool {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
