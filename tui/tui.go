package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"atomicgo.dev/cursor"
	"github.com/fatih/color"
)

// Printer renders progress lines on a terminal, keeping
// the last transient status confined to a single line
type Printer struct {
	mu     sync.Mutex
	out    io.Writer
	in     *bufio.Reader
	status bool
}

var std = New(os.Stdout, os.Stdin)

func New(out io.Writer, in io.Reader) *Printer {
	return &Printer{out: out, in: bufio.NewReader(in)}
}

func (printer *Printer) wipe() {
	if printer.status {
		cursor.StartOfLine()
		cursor.ClearLine()
		printer.status = false
	}
}

// Printf prints a persistent line
func (printer *Printer) Printf(format string, args ...interface{}) {
	printer.mu.Lock()
	defer printer.mu.Unlock()
	printer.wipe()
	fmt.Fprintf(printer.out, format+"\n", args...)
}

// Errorf prints a persistent red line
func (printer *Printer) Errorf(format string, args ...interface{}) {
	printer.mu.Lock()
	defer printer.mu.Unlock()
	printer.wipe()
	fmt.Fprintln(printer.out, color.RedString(format, args...))
}

// Statusf prints a transient line, replaced by
// whatever gets printed next
func (printer *Printer) Statusf(format string, args ...interface{}) {
	printer.mu.Lock()
	defer printer.mu.Unlock()
	printer.wipe()
	fmt.Fprint(printer.out, color.CyanString(format, args...))
	printer.status = true
}

// Wipe drops the transient line, if any
func (printer *Printer) Wipe() {
	printer.mu.Lock()
	defer printer.mu.Unlock()
	printer.wipe()
}

// Reads prompts and returns a trimmed user-supplied line
func (printer *Printer) Reads(prompt string) string {
	printer.mu.Lock()
	defer printer.mu.Unlock()
	printer.wipe()
	fmt.Fprintf(printer.out, "%s ", prompt)
	line, err := printer.in.ReadString('\n')
	if err != nil && len(line) == 0 {
		return ""
	}
	return strings.TrimSpace(line)
}

func Printf(format string, args ...interface{}) {
	std.Printf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	std.Errorf(format, args...)
}

func Statusf(format string, args ...interface{}) {
	std.Statusf(format, args...)
}

func Wipe() {
	std.Wipe()
}

func Reads(prompt string) string {
	return std.Reads(prompt)
}
