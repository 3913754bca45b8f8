package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Willie169/bython/internal/driver"
	"github.com/Willie169/bython/internal/source"
	"github.com/Willie169/bython/internal/ui"
)

type tokenizeOutcome struct {
	fileSet *source.FileSet
	results []driver.TokenizeDirResult
	err     error
}

func runTokenizeDirWithUI(ctx context.Context, title, dir string, opts driver.TokenizeDirOptions) (*source.FileSet, []driver.TokenizeDirResult, error) {
	files, err := driver.ListByFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan tokenizeOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fileSet, results, runErr := driver.TokenizeDir(ctx, dir, optsCopy)
		outcomeCh <- tokenizeOutcome{fileSet: fileSet, results: results, err: runErr}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
