// Package formdef loads form definitions from YAML and turns them into
// validated rule sets and floating-label forms.
package formdef

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	fv "github.com/Gobd/fieldvalidation"
	"github.com/Gobd/fieldvalidation/floatlabel"
	"github.com/Gobd/fieldvalidation/openapi"
	"github.com/Gobd/fieldvalidation/transform"
)

// File is the root of a definitions document.
type File struct {
	Forms []Definition `yaml:"forms" json:"forms"`

	byName map[string]*Definition
}

// Definition describes one form: its fields in display order.
type Definition struct {
	Name   string  `yaml:"name" json:"name"`
	Fields []Field `yaml:"fields" json:"fields"`
}

// Field describes one input of a form.
type Field struct {
	Name        string   `yaml:"name" json:"name"`
	Placeholder string   `yaml:"placeholder" json:"placeholder"`
	Transform   []string `yaml:"transform" json:"transform"`
	Rules       []Rule   `yaml:"rules" json:"rules"`

	ruleSet fv.RuleSet
	apply   transform.Func
}

// Rule is one entry of a field's rule list. Min and Max are read only by the
// kinds that take bounds.
type Rule struct {
	Kind    string `yaml:"kind" json:"kind"`
	Message string `yaml:"message" json:"message"`
	Min     int    `yaml:"min" json:"min"`
	Max     int    `yaml:"max" json:"max"`
}

var errBounds = validation.NewError("validation_bounds", "min must not be greater than max")

// Load reads and parses the definitions file at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load form definitions: %w", err)
	}
	defer f.Close()

	file, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return file, nil
}

// Parse decodes a definitions document, validates it and compiles every
// field's rule list and transform chain. Unknown YAML keys are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode form definitions: %w", err)
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("invalid form definitions: %w", err)
	}

	file.byName = make(map[string]*Definition, len(file.Forms))
	for i := range file.Forms {
		d := &file.Forms[i]
		if err := d.compile(); err != nil {
			return nil, fmt.Errorf("form %s: %w", d.Name, err)
		}
		file.byName[d.Name] = d
	}
	return &file, nil
}

// Validate reports missing names and messages, unknown rule kinds and
// transforms, inverted bounds and duplicate names.
func (f File) Validate() error {
	if err := fv.ValidateStruct(&f, fv.Field(&f.Forms)); err != nil {
		return err
	}
	if dup := duplicates(len(f.Forms), func(i int) string { return f.Forms[i].Name }); dup != nil {
		return fv.ValidationErrors{"forms": dup}
	}
	return nil
}

// Validate checks the form name and each of its fields.
func (d Definition) Validate() error {
	err := fv.ValidateStruct(&d,
		fv.Field(&d.Name, fv.Required("form name is required"), fv.MaxLength(64, "form name is too long")),
		fv.Field(&d.Fields),
	)
	if err != nil {
		return err
	}
	if dup := duplicates(len(d.Fields), func(i int) string { return d.Fields[i].Name }); dup != nil {
		return fv.ValidationErrors{"fields": dup}
	}
	return nil
}

// Validate checks the field name, its transforms and its rules.
func (f Field) Validate() error {
	err := fv.ValidateStruct(&f,
		fv.Field(&f.Name, fv.Required("field name is required")),
		fv.Field(&f.Rules),
	)
	if err != nil {
		return err
	}
	if _, err := transform.Parse(f.Transform...); err != nil {
		return fv.ValidationErrors{"transform": validation.NewError("validation_transform", err.Error())}
	}
	return nil
}

// Validate checks that the kind is registered and the message is set.
func (r Rule) Validate() error {
	err := fv.ValidateStruct(&r,
		fv.Field(&r.Kind, fv.Required("rule kind is required"), fv.Custom("unknown rule kind", knownKind)),
		fv.Field(&r.Message, fv.Required("rule message is required")),
	)
	if err != nil {
		return err
	}
	switch fv.Kind(r.Kind) {
	case fv.KindCharacterRange, fv.KindNumericRange:
		if r.Min > r.Max {
			return fv.ValidationErrors{"max": errBounds}
		}
	}
	return nil
}

func knownKind(s string) bool {
	k := fv.Kind(s)
	return k != fv.KindCustom && fv.Registered(k)
}

// duplicates returns an error for every index whose name repeats an
// earlier one, keyed by index.
func duplicates(n int, name func(int) string) fv.ValidationErrors {
	seen := make(map[string]bool, n)
	var errs fv.ValidationErrors
	for i := 0; i < n; i++ {
		if !seen[name(i)] {
			seen[name(i)] = true
			continue
		}
		if errs == nil {
			errs = fv.ValidationErrors{}
		}
		errs[strconv.Itoa(i)] = fv.ValidationErrors{
			"name": validation.NewError("validation_unique", fmt.Sprintf("duplicate name %q", name(i))),
		}
	}
	return errs
}

func (d *Definition) compile() error {
	for i := range d.Fields {
		f := &d.Fields[i]
		apply, err := transform.Parse(f.Transform...)
		if err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
		f.apply = apply
		f.ruleSet = make(fv.RuleSet, len(f.Rules))
		for j, r := range f.Rules {
			f.ruleSet[j] = fv.NewRule(fv.Kind(r.Kind), r.Message, fv.Bounds{Min: r.Min, Max: r.Max})
		}
	}
	return nil
}

// Names returns the form names in file order.
func (f *File) Names() []string {
	out := make([]string, len(f.Forms))
	for i, d := range f.Forms {
		out[i] = d.Name
	}
	return out
}

// Lookup returns the form named name.
func (f *File) Lookup(name string) (*Definition, bool) {
	d, ok := f.byName[name]
	return d, ok
}

// Field returns the field named name.
func (d *Definition) Field(name string) (*Field, bool) {
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			return &d.Fields[i], true
		}
	}
	return nil, false
}

// RuleSet returns the compiled rule list of the field.
func (f *Field) RuleSet() fv.RuleSet {
	return f.ruleSet
}

// Normalize runs the field's transform chain on v. A nil v stays nil.
func (f *Field) Normalize(v *string) *string {
	return f.apply.Apply(v)
}

// Form builds a floating-label form with one field per definition entry.
func (d *Definition) Form(logger *slog.Logger) *floatlabel.Form {
	fields := make([]*floatlabel.Field, len(d.Fields))
	for i := range d.Fields {
		f := &d.Fields[i]
		fields[i] = floatlabel.NewField(f.Name, f.Placeholder, f.ruleSet...)
	}
	return floatlabel.NewForm(fields, floatlabel.WithLogger(logger))
}

// Check normalizes and validates values keyed by field name. A missing key
// is an absent value. Keys that match no field are ignored. Check returns
// nil or a [fv.ValidationErrors] holding each failing field's first failure.
func (d *Definition) Check(values map[string]*string) error {
	errs := fv.ValidationErrors{}
	for i := range d.Fields {
		f := &d.Fields[i]
		if err := f.ruleSet.Check(f.Normalize(values[f.Name])); err != nil {
			errs[f.Name] = err
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Schema documents the form as a JSON object whose properties carry the
// fields' rules.
func (d *Definition) Schema() (*openapi3.SchemaRef, error) {
	props := make([]openapi.Property, len(d.Fields))
	for i := range d.Fields {
		props[i] = openapi.Property{Name: d.Fields[i].Name, Rules: d.Fields[i].ruleSet}
	}
	return openapi.FormSchema(props...)
}
