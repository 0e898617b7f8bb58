package formats

import (
	"github.com/ajitpratap0/medallion/pkg/errors"
	"github.com/ajitpratap0/medallion/pkg/models"
)

// InferSchema derives the schema of a record set from its first record and
// checks that every record matches it field by field, in order.
func InferSchema(name string, records []*models.Record) (*models.Schema, error) {
	if len(records) == 0 {
		return nil, errors.New(errors.ErrorTypeSerialization, "empty record set")
	}
	var schema *models.Schema
	for i, r := range records {
		if r == nil {
			return nil, errors.New(errors.ErrorTypeSerialization, "nil record").
				WithDetail("index", i)
		}
		s, err := models.SchemaOf(name, r)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeSerialization, "infer schema").
				WithDetail("index", i)
		}
		if schema == nil {
			schema = s
			continue
		}
		if m := schema.Diff(s); m != nil {
			return nil, errors.Newf(errors.ErrorTypeSerialization, "heterogeneous record set: %s", m).
				WithDetail("index", i).
				WithDetail("path", m.Path).
				WithDetail("position", m.Position).
				WithDetail("expected", m.Expected).
				WithDetail("actual", m.Actual)
		}
	}
	return schema, nil
}
