package main

import (
	"fmt"
	"io"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

func PrintInfo(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, colorBlue+"ℹ "+format+colorReset+"\n", a...)
}

func PrintSuccess(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, colorGreen+"✓ "+format+colorReset+"\n", a...)
}

func PrintWarning(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, colorYellow+"⚠ "+format+colorReset+"\n", a...)
}

func PrintError(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, colorRed+"✗ "+format+colorReset+"\n", a...)
}

func PrintHeader(w io.Writer, title string) {
	fmt.Fprintf(w, "\n"+colorYellow+"=== %s ==="+colorReset+"\n", title)
}
