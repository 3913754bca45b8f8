package diagfmt

import (
	"path/filepath"

	"github.com/Willie169/bython/internal/source"
)

// displayPath renders a file path according to mode. PathModeAuto prefers a
// path relative to the file set's base directory when one is set.
func displayPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(f.Path); err == nil {
			return filepath.ToSlash(abs)
		}
		return f.Path
	case PathModeBasename:
		return filepath.Base(f.Path)
	case PathModeRelative, PathModeAuto:
		if base := fs.BaseDir(); base != "" {
			if rel, err := source.RelativePath(f.Path, base); err == nil {
				return rel
			}
		}
		return f.Path
	default:
		return f.Path
	}
}
