package validate

import (
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/initializ/signup/schemas"
)

var (
	compiledRecordSchema *gojsonschema.Schema
	compileRecordOnce    sync.Once
	compileRecordErr     error
)

func getRecordSchema() (*gojsonschema.Schema, error) {
	compileRecordOnce.Do(func() {
		loader := gojsonschema.NewBytesLoader(schemas.RegistrationRecordV1Schema)
		compiledRecordSchema, compileRecordErr = gojsonschema.NewSchema(loader)
	})
	return compiledRecordSchema, compileRecordErr
}

// ValidateRecord validates raw JSON bytes of a submitted registration record.
// It returns a slice of validation error descriptions and an error if schema
// compilation fails.
func ValidateRecord(jsonData []byte) ([]string, error) {
	schema, err := getRecordSchema()
	if err != nil {
		return nil, fmt.Errorf("compiling registration record schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("validating registration record: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		errs = append(errs, e.String())
	}
	return errs, nil
}
