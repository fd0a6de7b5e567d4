package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed profile_schema.json
var profileSchemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(profileSchemaJSON))
	})
	return schema, schemaErr
}

// Validate checks the profile against the embedded JSON schema and returns a
// *ValidationError listing every violated field. URL-shaped fields are only
// length-bounded here; malformed URLs are dropped at render time instead of
// failing validation.
func (p Profile) Validate() error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile profile schema: %w", err)
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	res, err := s.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("validate profile: %w", err)
	}
	if res.Valid() {
		return nil
	}

	verr := &ValidationError{}
	for _, e := range res.Errors() {
		verr.Violations = append(verr.Violations, Violation{
			Field:   e.Field(),
			Message: e.Description(),
		})
	}
	sort.Slice(verr.Violations, func(i, j int) bool {
		return verr.Violations[i].Field < verr.Violations[j].Field
	})
	return verr
}
