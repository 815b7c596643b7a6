// Package compliance checks documents against the component schemas of the
// TRAPI OpenAPI documents.
package compliance

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/translator-tools/reasoner-converter/pkg/convert"
)

var (
	ErrUnknownComponent = errors.New("unknown schema component")
	ErrNonCompliant     = errors.New("document does not match schema")
)

//go:embed schemas/*.yaml
var bundled embed.FS

// Validator validates values against the component schemas of one OpenAPI
// document.
type Validator struct {
	doc *openapi3.T
}

// Load reads an OpenAPI document from an http(s) URL or a local path.
func Load(ctx context.Context, location string) (*Validator, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	loader.IsExternalRefsAllowed = true

	var (
		doc *openapi3.T
		err error
	)
	if u, perr := url.Parse(location); perr == nil && (u.Scheme == "http" || u.Scheme == "https") {
		doc, err = loader.LoadFromURI(u)
	} else {
		doc, err = loader.LoadFromFile(location)
	}
	if err != nil {
		return nil, fmt.Errorf("loading OpenAPI document %q: %w", location, err)
	}
	return newValidator(doc)
}

// LoadEmbedded returns a validator for the bundled copy of the given release.
func LoadEmbedded(version convert.Version) (*Validator, error) {
	data, err := bundled.ReadFile(fmt.Sprintf("schemas/trapi-%s.yaml", version))
	if err != nil {
		return nil, fmt.Errorf("no bundled schema for TRAPI %q: %w", version, err)
	}
	return FromData(data)
}

// FromData parses an OpenAPI document held in memory.
func FromData(data []byte) (*Validator, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("parsing OpenAPI document: %w", err)
	}
	return newValidator(doc)
}

func newValidator(doc *openapi3.T) (*Validator, error) {
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, fmt.Errorf("OpenAPI document declares no component schemas")
	}
	return &Validator{doc: doc}, nil
}

// Version returns the info.version of the loaded document.
func (v *Validator) Version() string {
	if v.doc.Info == nil {
		return ""
	}
	return v.doc.Info.Version
}

// Components lists the component schema names in lexical order.
func (v *Validator) Components() []string {
	names := make([]string, 0, len(v.doc.Components.Schemas))
	for name := range v.doc.Components.Schemas {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Validate checks value, once encoded as JSON, against the named component
// schema.
func (v *Validator) Validate(component string, value any) error {
	ref, ok := v.doc.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return fmt.Errorf("%q: %w", component, ErrUnknownComponent)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", component, err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding %s: %w", component, err)
	}

	if err := ref.Value.VisitJSON(doc, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNonCompliant, component, err)
	}
	return nil
}
