package ux

import (
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strings"
	"sync"
)

var (
	specialTextRegex = regexp.MustCompile("\x1b\\[[0-9;]*m")
)

// Printer is the sink drawables write their rendering actions to.
type Printer interface {
	Fprintf(format string, a ...any)
	Fprintln(a ...any)

	Size() CanvasSize
}

// CanvasSize is the number of rows written so far and the visible width of the current line.
type CanvasSize struct {
	Rows int
	Cols int
}

func newCanvasSize() *CanvasSize {
	return &CanvasSize{
		Rows: 0,
		Cols: 0,
	}
}

func NewPrinter(writer io.Writer) Printer {
	if writer == nil {
		writer = os.Stdout
	}

	return &printer{
		writer:      writer,
		currentLine: "",
		size:        newCanvasSize(),
	}
}

type printer struct {
	writer      io.Writer
	currentLine string
	size        *CanvasSize
	writeLock   sync.Mutex
}

func (p *printer) Size() CanvasSize {
	p.writeLock.Lock()
	defer p.writeLock.Unlock()

	return *p.size
}

func (p *printer) Fprintf(format string, a ...any) {
	p.writeLock.Lock()
	defer p.writeLock.Unlock()

	content := fmt.Sprintf(format, a...)
	lineCount := strings.Count(content, "\n")

	if lineCount > 0 {
		lines := strings.Split(content, "\n")
		p.currentLine = lines[len(lines)-1]
	} else {
		p.currentLine += content
	}

	fmt.Fprint(p.writer, content)

	p.size.Cols = len(specialTextRegex.ReplaceAllString(p.currentLine, ""))
	p.size.Rows += lineCount

	log.Print(content)
}

func (p *printer) Fprintln(a ...any) {
	p.Fprintf("%s", fmt.Sprintln(a...))
}
