package shell

import (
	"errors"
	"os"
	"strings"

	"github.com/peterh/liner"
	"go.uber.org/zap"
)

// LinerReader is a LineReader with line editing and persistent history.
type LinerReader struct {
	state       *liner.State
	historyFile string
	logger      *zap.Logger
}

// NewLinerReader takes over the terminal for line editing. History is read
// from historyFile when it is set; Close writes it back.
func NewLinerReader(historyFile string, logger *zap.Logger) *LinerReader {
	if logger == nil {
		logger = zap.NewNop()
	}

	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	r := &LinerReader{state: state, historyFile: historyFile, logger: logger}
	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			if _, err := state.ReadHistory(f); err != nil {
				logger.Warn("failed to read history",
					zap.String("op", "shell.NewLinerReader"),
					zap.String("file", historyFile),
					zap.Error(err),
				)
			}
			_ = f.Close()
		}
	}
	return r
}

// Prompt shows prompt and reads a line. Ctrl+C yields ErrAborted and Ctrl+D
// yields io.EOF.
func (r *LinerReader) Prompt(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", ErrAborted
		}
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		r.state.AppendHistory(line)
	}
	return line, nil
}

// Close saves history and restores the terminal.
func (r *LinerReader) Close() error {
	if r.historyFile != "" {
		if f, err := os.Create(r.historyFile); err == nil {
			if _, err := r.state.WriteHistory(f); err != nil {
				r.logger.Warn("failed to write history",
					zap.String("op", "shell.LinerReader.Close"),
					zap.String("file", r.historyFile),
					zap.Error(err),
				)
			}
			_ = f.Close()
		} else {
			r.logger.Warn("failed to create history file",
				zap.String("op", "shell.LinerReader.Close"),
				zap.String("file", r.historyFile),
				zap.Error(err),
			)
		}
	}
	return r.state.Close()
}
