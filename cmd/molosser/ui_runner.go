package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"molosser/internal/driver"
	"molosser/internal/ui"
)

type lowerOutcome struct {
	results []*driver.Result
	err     error
}

func runLowerWithUI(ctx context.Context, title string, files []string, opts driver.Options) ([]*driver.Result, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan lowerOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.LowerFiles(ctx, files, optsCopy)
		outcomeCh <- lowerOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	if uiErr != nil {
		// keep the driver unblocked
		for range events {
		}
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
