package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Willie169/bython/internal/diag"
	"github.com/Willie169/bython/internal/lexer"
	"github.com/Willie169/bython/internal/source"
	"github.com/Willie169/bython/internal/token"
)

// TokenizeDirResult holds the tokenization result for one file.
type TokenizeDirResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
}

// TokenizeDirOptions tunes a directory-wide tokenization run.
type TokenizeDirOptions struct {
	MaxDiagnostics int
	Jobs           int          // <= 0 means GOMAXPROCS
	Progress       ProgressSink // optional
	Cache          *DiskCache   // optional
}

// ListByFiles returns the sorted list of all *.by files under dir.
func ListByFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".by") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// deterministic order
	sort.Strings(files)
	return files, nil
}

// TokenizeDir tokenizes every *.by file under dir in parallel. Result order
// matches the sorted file list regardless of scheduling.
func TokenizeDir(ctx context.Context, dir string, opts TokenizeDirOptions) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := ListByFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// preload sequentially; FileSet is not safe for concurrent Add
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, loadErr := fileSet.Load(path)
		if loadErr != nil {
			loadErrors[path] = loadErr
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageTokenize, Status: StatusQueued})
	}

	// one slot per goroutine, no mutex needed
	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			started := time.Now()
			emit(opts.Progress, Event{File: path, Stage: StageTokenize, Status: StatusWorking})

			bag := diag.NewBag(opts.MaxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
					"failed to load file: "+loadErr.Error()))
				results[i] = TokenizeDirResult{Path: path, Bag: bag}
				emit(opts.Progress, Event{
					File: path, Stage: StageTokenize, Status: StatusError,
					Err: loadErr, Elapsed: time.Since(started),
				})
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			tokens, cached := opts.Cache.Lookup(file)
			if !cached {
				lexOpts := lexer.Options{Reporter: diag.BagReporter{Bag: bag}}
				stream := lexer.NewStream(lexer.New(file, lexOpts), lexer.DefaultStreamConfig(), lexOpts)
				for {
					tok := stream.Next()
					tokens = append(tokens, tok)
					if tok.Kind == token.EOF {
						break
					}
				}
				// only clean results are worth caching
				if !bag.HasWarnings() {
					_ = opts.Cache.Store(file, tokens)
				}
			}

			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Tokens: tokens,
				Bag:    bag,
			}

			status := StatusDone
			if bag.HasErrors() {
				status = StatusError
			}
			emit(opts.Progress, Event{
				File: path, Stage: StageTokenize, Status: status,
				Elapsed: time.Since(started),
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
