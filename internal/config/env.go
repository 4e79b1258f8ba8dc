package config

import (
	"fmt"
	"os"
	"reflect"
)

// processStructFields recursively walks the config struct and overrides any
// field carrying an env tag with the matching environment variable, when set.
func processStructFields(s interface{}) error {
	val := reflect.ValueOf(s)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		// Nested sections recurse.
		if field.Kind() == reflect.Struct {
			if err := processStructFields(field.Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		envTag := fieldType.Tag.Get("env")
		if envTag == "" {
			continue
		}

		envValue, exists := os.LookupEnv(envTag)
		if !exists {
			continue
		}

		if err := setFieldFromEnv(field, envValue); err != nil {
			return fmt.Errorf("failed to set field %s from env var %s: %w", fieldType.Name, envTag, err)
		}
	}

	return nil
}

// setFieldFromEnv writes the raw environment string into the field. Every
// configurable value is a string here; durations (analysis timeout) and the
// port stay strings and are parsed where they are consumed, so the override
// layer never needs to convert.
func setFieldFromEnv(field reflect.Value, value string) error {
	if !field.CanSet() {
		return fmt.Errorf("field cannot be set")
	}
	if field.Kind() != reflect.String {
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}
	field.SetString(value)
	return nil
}
