package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB cap for the seed corpus

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)

	f.Add([]byte{})
	f.Add([]byte("x = 1\n"))
	f.Add([]byte("def f(a, b) {\n    return a + b\n}\n"))
	f.Add([]byte("f(\n  1,\n  2\n)\n"))
	f.Add([]byte("# comment only\n"))
	f.Add([]byte("a = [1,\n2]\n\n\nb = 3"))
	f.Add([]byte(")]}\n"))
	f.Add([]byte("s = \"line\\nbreak\"\n"))
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".by" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
