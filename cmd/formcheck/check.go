package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	fv "github.com/Gobd/fieldvalidation"
	"github.com/Gobd/fieldvalidation/internal/server"
)

// errInvalid is returned when the submission fails validation. The results
// have already been printed.
var errInvalid = errors.New("submission is invalid")

func newCheckCmd(a *app) *cobra.Command {
	var (
		form   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "check --form NAME [field=value ...]",
		Short: "Validate one submission and print each field's result",
		Example: `  formcheck check --form login email=ann@example.com password=secret1
  formcheck check -f signup.yaml --form signup --json name=Ann`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args)
			if err != nil {
				return err
			}

			file, err := a.loadForms()
			if err != nil {
				return err
			}
			def, ok := file.Lookup(form)
			if !ok {
				return fmt.Errorf("unknown form %q (valid: %s)", form, strings.Join(file.Names(), ", "))
			}
			for name := range values {
				if _, ok := def.Field(name); !ok {
					return fmt.Errorf("form %s has no field %q", form, name)
				}
			}

			messages := fv.Messages(def.Check(values))
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(server.Result{Valid: len(messages) == 0, Errors: messages}); err != nil {
					return err
				}
			} else {
				for _, f := range def.Fields {
					if msg, bad := messages[f.Name]; bad {
						fmt.Fprintf(out, "%s: %s\n", f.Name, msg)
					} else {
						fmt.Fprintf(out, "%s: ok\n", f.Name)
					}
				}
			}

			if len(messages) > 0 {
				return errInvalid
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&form, "form", "", "name of the form to validate against")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("form")
	return cmd
}

// parseValues turns field=value arguments into submitted values. A later
// argument for the same field wins.
func parseValues(args []string) (map[string]*string, error) {
	values := make(map[string]*string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid argument %q: want field=value", arg)
		}
		values[name] = &value
	}
	return values, nil
}
