/*
Copyright © 2025 Ken'ichiro Oyama <k1lowxb@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/goosio/notedeck/config"
	"github.com/goosio/notedeck/handler/dot"
	"github.com/goosio/notedeck/version"
	"github.com/k1LoW/errors"
	"github.com/k1LoW/tail"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
)

const (
	logFileName   = "notedeck.log"
	latestLogSize = 30
)

var profile string

// tb keeps the latest log records for the error dump.
var tb = tail.New(latestLogSize)

var rootCmd = &cobra.Command{
	Use:          "notedeck",
	Short:        "notedeck compiles authored notes into slide decks and case studies",
	Long:         `notedeck compiles authored notes into slide decks and case studies.`,
	SilenceUsage: true,
	Version:      fmt.Sprintf("%s (rev:%s)", version.Version, version.Revision),
}

type errorData struct {
	LatestLogs  []any     `json:"latest_logs"`
	StackTraces any       `json:"stack_traces"`
	CreatedAt   time.Time `json:"created_at"`
	Version     string    `json:"version"`
	Revision    string    `json:"revision"`
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}
	// Write stack trace log to state directory
	d := &errorData{
		LatestLogs:  latestLogs(tb.Lines()),
		StackTraces: errors.StackTraces(err),
		CreatedAt:   time.Now(),
		Version:     version.Version,
		Revision:    version.Revision,
	}
	b, err := json.Marshal(d)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
	} else {
		dumpPath := filepath.Join(config.StateHomePath(), "error.json")
		if err := os.MkdirAll(filepath.Dir(dumpPath), 0o700); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to create state directory: %v\n", err)
		} else if err := os.WriteFile(dumpPath, b, 0o600); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to write error.json to %s: %v\n", dumpPath, err)
		}
	}
	os.Exit(1)
}

// latestLogs decodes JSON log lines, keeping undecodable lines as they are.
func latestLogs(lines []string) []any {
	logs := make([]any, 0, len(lines))
	for _, line := range lines {
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			logs = append(logs, line)
		} else {
			logs = append(logs, m)
		}
	}
	return logs
}

// newLogger fans records out to the progress dots on stderr, the JSON log file in the
// state directory and the tail buffer. Close the returned closer when the command is done.
func newLogger() (_ *slog.Logger, _ io.Closer, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if err := os.MkdirAll(config.StateHomePath(), 0o700); err != nil {
		return nil, nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(config.StateHomePath(), logFileName), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	dh, err := dot.New(slog.NewTextHandler(io.Discard, opts))
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	logger := slog.New(slogmulti.Fanout(
		dh,
		slog.NewJSONHandler(f, opts),
		slog.NewJSONHandler(tb, opts),
	))
	return logger, f, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "", "", "profile name")
}
