package floatlabel

import (
	"io"
	"log/slog"

	fv "github.com/Gobd/fieldvalidation"
)

// Option configures a Form.
type Option func(*Form)

// WithLogger sets the logger used to report failed submissions.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.log = l
		}
	}
}

// Form owns an ordered list of fields and validates them on submit.
type Form struct {
	fields []*Field
	log    *slog.Logger
}

// NewForm returns a form over fields, in display order.
func NewForm(fields []*Field, opts ...Option) *Form {
	f := &Form{
		fields: fields,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fields returns the fields in display order.
func (f *Form) Fields() []*Field {
	return f.fields
}

// Field returns the field named name, or nil.
func (f *Form) Field(name string) *Field {
	for _, fl := range f.fields {
		if fl.Name == name {
			return fl
		}
	}
	return nil
}

// Submit validates every field. Each failing field shows its first failure
// and is reported in the returned map; passing fields have their error
// cleared. Submit returns nil when every field is valid.
func (f *Form) Submit() error {
	errs := fv.ValidationErrors{}
	for _, fl := range f.fields {
		err := fl.Validate()
		if err == nil {
			fl.ClearError()
			continue
		}
		fl.ShowError(err.Error())
		errs[fl.Name] = err
		f.log.Debug("field rejected",
			slog.String("field", fl.Name),
			slog.String("code", fv.ErrorCode(err)),
			slog.String("message", err.Error()),
		)
	}
	if len(errs) == 0 {
		return nil
	}
	f.log.Info("form submission rejected", slog.Int("invalid_fields", len(errs)))
	return errs
}
