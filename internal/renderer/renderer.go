// Package renderer merges configuration sections into a template document.
package renderer

import (
	"fmt"
	"strings"

	"github.com/hay-kot/claudemd/internal/sections"
	"github.com/rs/zerolog/log"
)

type Renderer struct {
	bindings []Binding
}

// New returns a Renderer applying the default bindings followed by extra.
// Every binding is compiled up front so a bad condition fails before any
// file is touched.
func New(extra ...Binding) (*Renderer, error) {
	all := append(DefaultBindings(), extra...)

	for i := range all {
		if err := all[i].Compile(); err != nil {
			return nil, err
		}
	}

	return &Renderer{bindings: all}, nil
}

// Render applies each binding to template in order. Bindings run
// sequentially, so text inserted by an earlier binding is visible to later
// ones.
func (r *Renderer) Render(template, config string) (string, error) {
	out := template

	for i := range r.bindings {
		b := &r.bindings[i]
		value := sections.Extract(config, b.Section)

		ok, err := b.applies(value)
		if err != nil {
			return "", err
		}
		if !ok {
			log.Debug().Str("section", b.Section).Msg("binding skipped")
			continue
		}

		log.Debug().
			Str("section", b.Section).
			Int("occurrences", strings.Count(out, b.Target)).
			Msg("binding applied")

		out = strings.ReplaceAll(out, b.Target, b.replacement(value))
	}

	return out, nil
}

// Plan reports, per binding, whether it would apply to config.
func (r *Renderer) Plan(config string) ([]Step, error) {
	steps := make([]Step, 0, len(r.bindings))

	for i := range r.bindings {
		b := &r.bindings[i]
		value := sections.Extract(config, b.Section)

		ok, err := b.applies(value)
		if err != nil {
			return nil, err
		}

		steps = append(steps, Step{Binding: *b, Value: value, Applies: ok})
	}

	return steps, nil
}

type Step struct {
	Binding Binding
	Value   string
	Applies bool
}

// Render merges config into template with the default bindings.
func Render(template, config string) string {
	r, err := New()
	if err != nil {
		// The default bindings are constant and always compile.
		panic(fmt.Sprintf("renderer: default bindings: %v", err))
	}

	out, err := r.Render(template, config)
	if err != nil {
		panic(fmt.Sprintf("renderer: default bindings: %v", err))
	}

	return out
}
