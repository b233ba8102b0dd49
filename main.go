package main

import (
	"fmt"
	"os"

	"github.com/faiface/mainthread"
)

func main() {
	mainthread.Run(run)
}

func run() {
	a := newApp(os.Stdout, os.Stderr)
	// world edits are serialized on the main thread
	a.call = mainthread.CallErr
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
