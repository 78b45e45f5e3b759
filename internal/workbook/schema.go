// SPDX-License-Identifier: MIT

package workbook

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"
)

// Schema issue codes.
const (
	CodeSyntax = "W001" // YAML does not parse
	CodeSchema = "W002" // document does not match #Workbook
)

// ErrSchema is wrapped by *SchemaError.
var ErrSchema = errors.New("workbook: schema violation")

const schemaFile = "schema.cue"

//go:embed schema.cue
var schemaSource string

// Issue is one schema problem with its location.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Line    int    `json:"line,omitempty"`
}

func (i Issue) String() string {
	if i.Line > 0 {
		return fmt.Sprintf("[%s] line %d: %s: %s", i.Code, i.Line, i.Field, i.Message)
	}

	return fmt.Sprintf("[%s] %s: %s", i.Code, i.Field, i.Message)
}

// SchemaError lists every issue found in a workbook file.
type SchemaError struct {
	File   string
	Issues []Issue
}

func (e *SchemaError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		parts[i] = is.String()
	}

	return fmt.Sprintf("%v in %s: %s", ErrSchema, e.File, strings.Join(parts, "; "))
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

type schema struct {
	ctx *cue.Context
	def cue.Value
}

var loadSchema = sync.OnceValues(func() (*schema, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(schemaSource, cue.Filename(schemaFile))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("workbook: compile schema: %w", err)
	}

	return &schema{ctx: ctx, def: v.LookupPath(cue.ParsePath("#Workbook"))}, nil
})

// validateSchema checks raw YAML against #Workbook. A nil return means the
// document is well formed.
func validateSchema(name string, data []byte) error {
	s, err := loadSchema()
	if err != nil {
		return err
	}

	file, err := cueyaml.Extract(name, data)
	if err != nil {
		return &SchemaError{File: name, Issues: issuesOf(err, CodeSyntax)}
	}
	v := s.ctx.BuildFile(file)
	if err := v.Err(); err != nil {
		return &SchemaError{File: name, Issues: issuesOf(err, CodeSyntax)}
	}
	if err := s.def.Unify(v).Validate(cue.Concrete(true)); err != nil {
		return &SchemaError{File: name, Issues: issuesOf(err, CodeSchema)}
	}

	return nil
}

// issuesOf flattens a CUE error list, keeping the first position of each.
func issuesOf(err error, code string) []Issue {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return []Issue{{Field: "workbook", Message: err.Error(), Code: code}}
	}
	out := make([]Issue, 0, len(errs))
	for _, e := range errs {
		format, args := e.Msg()
		is := Issue{
			Field:   strings.Join(e.Path(), "."),
			Message: fmt.Sprintf(format, args...),
			Code:    code,
		}
		if is.Field == "" {
			is.Field = "workbook"
		}
		for _, p := range cueerrors.Positions(e) {
			if p.Line() > 0 && p.Filename() != schemaFile {
				is.Line = p.Line()
				break
			}
		}
		out = append(out, is)
	}

	return out
}
