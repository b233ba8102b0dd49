package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// printer writes one line per result: a sentence on a terminal, logfmt style
// key=value pairs when the output is piped.
type printer struct {
	w     io.Writer
	plain bool
}

func newPrinter(w io.Writer) printer {
	plain := true
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		plain = false
	}
	return printer{w: w, plain: plain}
}

func (p printer) line(human string, keyvals ...string) {
	if !p.plain {
		fmt.Fprintln(p.w, human)
		return
	}
	pairs := make([]string, 0, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		value := keyvals[i+1]
		if value == "" || strings.ContainsAny(value, " \"") {
			value = fmt.Sprintf("%q", value)
		}
		pairs = append(pairs, keyvals[i]+"="+value)
	}
	fmt.Fprintln(p.w, strings.Join(pairs, " "))
}
