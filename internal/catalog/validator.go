package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaSource []byte

// validator checks catalog documents against the embedded CUE schema.
type validator struct {
	ctx    *cue.Context
	schema cue.Value
}

func newValidator() (*validator, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaSource)
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling catalog schema: %w", schema.Err())
	}

	def := schema.LookupPath(cue.ParsePath("#Catalog"))
	if !def.Exists() {
		return nil, fmt.Errorf("catalog schema has no #Catalog definition")
	}

	return &validator{ctx: ctx, schema: def}, nil
}

// validate reports every schema violation of doc as one error.
func (v *validator) validate(name string, doc *document) error {
	val := v.ctx.Encode(doc)
	if val.Err() != nil {
		return fmt.Errorf("encoding catalog %s: %w", name, val.Err())
	}

	unified := v.schema.Unify(val)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		var b strings.Builder
		for _, e := range cueerrors.Errors(err) {
			format, args := e.Msg()
			b.WriteString("\n  ")
			if path := strings.Join(e.Path(), "."); path != "" {
				b.WriteString(path)
				b.WriteString(": ")
			}
			b.WriteString(fmt.Sprintf(format, args...))
		}
		return fmt.Errorf("catalog %s does not match schema:%s", name, b.String())
	}
	return nil
}
