package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds an insert from the db-tagged fields of model.
// Fields tagged "-" or with the ",auto" option (serial keys, defaults) are skipped.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

func columnsAndValuesFromModel(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct, got %s", value.Kind())
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" || strings.Contains(opts, "auto") {
			continue
		}
		cols = append(cols, name)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}
