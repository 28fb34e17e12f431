package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mwhitman/draftboard/internal/cli/formatter"
)

// captureCobraOutput runs one command through the Cobra tree and returns
// everything it printed. It redirects os.Stdout so that direct fmt.Print
// calls from command handlers are captured instead of writing raw bytes
// into the Bubbletea alternate screen.
func captureCobraOutput(app *App, args []string, hasActiveBoard bool) string {
	origStdout := os.Stdout
	pr, pw, err := os.Pipe()
	if err != nil {
		return shellError(err)
	}
	os.Stdout = pw

	root := NewRootCmd(app)
	root.SetOut(pw)
	root.SetErr(pw)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true

	var buf strings.Builder
	done := make(chan struct{})
	go func() {
		io.Copy(&buf, pr)
		close(done)
	}()

	if execErr := root.Execute(); execErr != nil {
		fmt.Fprint(pw, shellError(execErr))
		if !hasActiveBoard && strings.Contains(execErr.Error(), "board") {
			fmt.Fprint(pw, "\n"+formatter.Dim("Hint: set an active board with 'use <id>'"))
		}
	}

	pw.Close()
	os.Stdout = origStdout
	<-done

	return strings.TrimRight(buf.String(), "\n")
}
