package openapi

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// Response describes an HTTP response with a description and body schemas.
// Bodies are Go values whose schema is generated; Schemas are used as given.
type Response struct {
	Desc    string
	Bodies  []any
	Schemas []*openapi3.SchemaRef
}

// Endpoint describes a single API operation for [Get] and [Post].
type Endpoint struct {
	Summary       string
	Description   string
	Request       any                 // request body type (schema generated from the value)
	RequestSchema *openapi3.SchemaRef // request body schema used as given; wins over Request
	Response      any                 // single 200 response type (convenience)
	Responses     map[string]Response // full response map (overrides Response if both set)
}

// NewRequest wraps one or more schemas in a JSON request body. Several
// schemas are offered as oneOf.
func NewRequest(schemas ...*openapi3.SchemaRef) (*openapi3.RequestBodyRef, error) {
	if len(schemas) == 0 {
		return nil, errors.New("no schemas given")
	}
	return &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().
			WithRequired(true).
			WithContent(openapi3.Content{"application/json": &openapi3.MediaType{Schema: oneOf(schemas)}}),
	}, nil
}

// NewResponse creates an OpenAPI responses object.
// Map key is status code (e.g. "200", "4xx").
func NewResponse(vs map[string]Response) (*openapi3.Responses, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}

	opts := make([]openapi3.NewResponsesOption, 0, len(vs))
	for statusCode, r := range vs {
		refs := append([]*openapi3.SchemaRef(nil), r.Schemas...)
		for _, body := range r.Bodies {
			schema, err := NewSchemaRefForValue(body)
			if err != nil {
				return nil, err
			}
			refs = append(refs, schema)
		}

		desc := r.Desc
		resp := &openapi3.Response{Description: &desc}
		if len(refs) > 0 {
			resp.Content = openapi3.Content{"application/json": &openapi3.MediaType{Schema: oneOf(refs)}}
		}
		opts = append(opts, openapi3.WithName(statusCode, resp))
	}
	return openapi3.NewResponses(opts...), nil
}

func oneOf(refs []*openapi3.SchemaRef) *openapi3.SchemaRef {
	if len(refs) == 1 {
		return refs[0]
	}
	return &openapi3.SchemaRef{Value: &openapi3.Schema{OneOf: refs}}
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
	}
}

// AddPath adds an operation to the OpenAPI document at the given path and method.
func AddPath(path, method string, s *openapi3.T, op *openapi3.Operation) {
	p := s.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}
	p.SetOperation(method, op)
	s.Paths.Set(path, p)
}

// Get registers a GET endpoint on doc.
func Get(doc *openapi3.T, path, operationID string, ep Endpoint) error {
	return addEndpoint(doc, path, http.MethodGet, operationID, ep)
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) error {
	return addEndpoint(doc, path, http.MethodPost, operationID, ep)
}

func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) error {
	op := &openapi3.Operation{
		OperationID: operationID,
		Summary:     ep.Summary,
		Description: ep.Description,
	}

	request := ep.RequestSchema
	if request == nil && ep.Request != nil {
		var err error
		if request, err = NewSchemaRefForValue(ep.Request); err != nil {
			return err
		}
	}
	if request != nil {
		body, err := NewRequest(request)
		if err != nil {
			return err
		}
		op.RequestBody = body
	}

	responses := ep.Responses
	if responses == nil && ep.Response != nil {
		responses = map[string]Response{
			"200": {Desc: "OK", Bodies: []any{ep.Response}},
		}
	}
	if responses != nil {
		r, err := NewResponse(responses)
		if err != nil {
			return err
		}
		op.Responses = r
	} else {
		op.Responses = openapi3.NewResponses()
	}

	AddPath(path, method, doc, op)
	return nil
}
