// Package printer writes styled, human facing output to the console.
package printer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hay-kot/claudemd/pkgs/styles"
)

type Printer struct {
	writer io.Writer
	base   styles.RenderFunc
	light  styles.RenderFunc
}

func New(w io.Writer) *Printer {
	return &Printer{
		writer: w,
		base:   styles.Plain,
		light:  styles.Subtle,
	}
}

// Ctx returns a copy of the printer writing to the context writer when one
// is set.
func (p *Printer) Ctx(ctx context.Context) *Printer {
	cp := *p
	if w, ok := GetWriter(ctx); ok {
		cp.writer = w
	}
	return &cp
}

func (p *Printer) println(s string) {
	_, _ = fmt.Fprintln(p.writer, s)
}

func (p *Printer) FatalError(err error) {
	p.LineBreak()
	p.println(styles.ErrorBox("Error", err.Error()))
}

func (p *Printer) Title(title string) {
	p.println(styles.Bold(p.base(title)))
}

// Success prints a check mark followed by msg.
func (p *Printer) Success(msg string) {
	p.println(styles.Success(styles.Check) + " " + p.base(msg))
}

// Done prints the final confirmation line of a command.
func (p *Printer) Done(msg string) {
	p.println(styles.Done + " " + msg)
}

func (p *Printer) LineBreak() {
	p.println("")
}

func (p *Printer) List(title string, items []string) {
	p.Title(title)
	for _, item := range items {
		p.println(p.light(styles.Dot) + " " + p.base(item))
	}
}

type StatusListItem struct {
	Ok     bool
	Status string
	Detail string // optional, rendered in the light style
}

func (p *Printer) StatusList(title string, items []StatusListItem) {
	p.Title(title)

	for _, item := range items {
		icon := styles.Error(styles.Cross)
		if item.Ok {
			icon = styles.Success(styles.Check)
		}

		var sb strings.Builder
		sb.WriteString(icon)
		sb.WriteString(" ")
		sb.WriteString(p.base(item.Status))
		if item.Detail != "" {
			sb.WriteString(p.light(item.Detail))
		}

		p.println(sb.String())
	}
}
