package storage

import (
	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed snapshot.schema.json
var snapshotSchema string

// ValidateSnapshotJSON checks a raw snapshot payload against the embedded
// JSON Schema before it is decoded into the document model. Returns an
// InvalidSnapshotError describing the first offending fields.
func ValidateSnapshotJSON(key string, payload []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(snapshotSchema)
	documentLoader := gojsonschema.NewBytesLoader(payload)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &InvalidSnapshotError{Key: key, Message: "schema validation failed", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	desc := result.Errors()[0]
	field := desc.Field()
	if field == "" {
		field = "(root)"
	}
	return &InvalidSnapshotError{
		Key:     key,
		Message: field + ": " + desc.Description(),
	}
}
