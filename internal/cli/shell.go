package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/shlex"
	"github.com/spf13/cobra"
)

const (
	prompt    = "panel> "
	retryHint = "Could not load the list. Type 'retry' to try again."
)

func shellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively, keeping the cache and favorites between them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runShell(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// defaultHistoryFile keeps shell history in the user's home directory, or in the
// working directory when there is none.
func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".panelctl_history")
}

func (a *App) newReadline(in io.Reader, out io.Writer) (*readline.Instance, error) {
	cfg := &readline.Config{
		Prompt:            prompt,
		HistoryFile:       a.historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		Stdout:            out,
		Stderr:            out,
	}
	if in != os.Stdin {
		cfg.Stdin = io.NopCloser(in)
		cfg.FuncIsTerminal = func() bool { return false }
	}
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("init readline: %w", err)
	}
	return rl, nil
}

func (a *App) runShell(ctx context.Context, in io.Reader, out io.Writer) error {
	rl, err := a.newReadline(in, out)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) && line != "" {
				continue
			}
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return nil
			}
			return err
		}

		args, err := shlex.Split(line)
		if err != nil {
			printf(out, "error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		retrying := false
		switch strings.ToLower(args[0]) {
		case "exit", "quit":
			return nil
		case "shell":
			printf(out, "Already in the shell.\n")
			continue
		case "retry":
			if a.lastFailed == nil {
				printf(out, "Nothing to retry.\n")
				continue
			}
			args, retrying = a.lastFailed, true
		}

		if a.runLine(ctx, args, out) && retrying {
			a.lastFailed = nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// runLine executes one shell line and reports whether it succeeded.
func (a *App) runLine(ctx context.Context, args []string, out io.Writer) bool {
	root := newTree(a)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(out)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return true
	}
	printf(out, "%s\n", ErrorMessage(err))
	a.lastFailed = args
	if cmd != nil && cmd.Annotations[annotationList] == "true" {
		printf(out, "%s\n", retryHint)
	}
	return false
}
