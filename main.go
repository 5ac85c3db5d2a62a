package main

import (
	"fmt"
	"os"

	"github.com/ternedit/tern/editor"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: tern <file>")
		os.Exit(1)
	}

	e := editor.NewEditor()
	if err := e.Open(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(e); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run scopes raw mode: the terminal is restored on every return path,
// panics included.
func run(e *editor.Editor) error {
	if err := e.EnableRawMode(); err != nil {
		return err
	}
	defer func() {
		e.RestoreTerminal()
		editor.ResetScreen()
	}()

	if err := e.Init(); err != nil {
		return err
	}
	return e.Run()
}
