package renderer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

const (
	SectionProjectDescription = "PROJECT_DESCRIPTION"
	SectionDomainSpecifics    = "DOMAIN_SPECIFICS"
	SectionDatabaseSchemaRef  = "DATABASE_SCHEMA_REF"

	// SchemaReviewLine is the stock template line replaced by the schema
	// reference when one is configured.
	SchemaReviewLine = "2. Review schema documentation (check `docs/db/` for schema baselines)"

	// ValueToken marks where the section value goes in a Binding format.
	ValueToken = "{value}"
)

// Binding substitutes the value of one configuration section into the
// template.
type Binding struct {
	Section string `yaml:"section"`
	Target  string `yaml:"target"`           // literal text replaced, every occurrence
	Format  string `yaml:"format,omitempty"` // replacement text, ValueToken is the value; empty means the value
	When    string `yaml:"when,omitempty"`   // boolean expression over value and section; empty means always

	program *vm.Program
}

// Placeholder returns a binding that replaces {{section}} with the section
// value.
func Placeholder(section string) Binding {
	return Binding{
		Section: section,
		Target:  "{{" + section + "}}",
	}
}

// DefaultBindings are the bindings every render applies, in order.
func DefaultBindings() []Binding {
	return []Binding{
		Placeholder(SectionProjectDescription),
		Placeholder(SectionDomainSpecifics),
		{
			Section: SectionDatabaseSchemaRef,
			Target:  SchemaReviewLine,
			Format:  "2. Review `" + ValueToken + "`",
			When:    `value != ""`,
		},
	}
}

// Compile validates the binding and prepares its condition.
func (b *Binding) Compile() error {
	if b.Section == "" {
		return errors.New("binding section is required")
	}
	if b.Target == "" {
		return fmt.Errorf("binding %s: target is required", b.Section)
	}

	if b.When == "" {
		b.program = nil
		return nil
	}

	program, err := expr.Compile(b.When, expr.Env(conditionEnv("", "")), expr.AsBool())
	if err != nil {
		return fmt.Errorf("binding %s: invalid when expression: %w", b.Section, err)
	}

	b.program = program
	return nil
}

// applies reports whether the binding should run for value.
func (b *Binding) applies(value string) (bool, error) {
	if b.program == nil {
		return true, nil
	}

	out, err := expr.Run(b.program, conditionEnv(b.Section, value))
	if err != nil {
		return false, fmt.Errorf("binding %s: when expression failed: %w", b.Section, err)
	}

	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("binding %s: when expression did not evaluate to boolean, got %T", b.Section, out)
	}

	return ok, nil
}

// replacement renders the text that replaces Target.
func (b *Binding) replacement(value string) string {
	if b.Format == "" {
		return value
	}
	return strings.ReplaceAll(b.Format, ValueToken, value)
}

func conditionEnv(section, value string) map[string]any {
	return map[string]any{
		"section": section,
		"value":   value,
	}
}
