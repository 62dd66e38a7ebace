// Package env loads configuration structs from the environment.
//
// Fields are bound with struct tags:
//
//	type Config struct {
//		Size  int          `env:"WINDOW_SIZE" env-default:"2"`
//		Level zerolog.Level `env:"LOG_LEVEL" env-default:"info"`
//	}
package env

import (
	"encoding"
	"fmt"
	"os"
	"reflect"
	"strconv"

	"go.llib.dev/iterutil/pkg/errorkit"
)

const ErrLoadInvalidData errorkit.Error = "ErrLoadInvalidData"

const (
	envTagKey        = "env"
	envDefaultTagKey = "env-default"
)

// Load sets the tagged fields of the struct behind ptr from the environment.
// Fields whose variable is absent, and which have no default, keep their current value.
// Supported field types are strings, booleans, integers, and encoding.TextUnmarshaler implementations.
func Load[T any](ptr *T) error {
	if ptr == nil {
		return ErrLoadInvalidData.F("nil value received")
	}
	rv := reflect.ValueOf(ptr).Elem()
	if rv.Kind() != reflect.Struct {
		return ErrLoadInvalidData.F("non-struct type received: %T", *ptr)
	}
	return loadVisitStruct(rv)
}

func loadVisitStruct(rStruct reflect.Value) error {
	var errs []error
	for i, numField := 0, rStruct.NumField(); i < numField; i++ {
		rStructField := rStruct.Type().Field(i)
		if !rStructField.IsExported() {
			continue
		}
		field := rStruct.Field(i)

		key, ok := rStructField.Tag.Lookup(envTagKey)
		if !ok {
			if field.Kind() == reflect.Struct {
				errs = append(errs, loadVisitStruct(field))
			}
			continue
		}

		raw, ok := os.LookupEnv(key)
		if !ok {
			raw, ok = rStructField.Tag.Lookup(envDefaultTagKey)
		}
		if !ok {
			continue
		}
		if err := parseInto(field, raw); err != nil {
			errs = append(errs, fmt.Errorf("error parsing the value of %s for %s: %w", key, rStructField.Name, err))
		}
	}
	return errorkit.Merge(errs...)
}

func parseInto(field reflect.Value, raw string) error {
	if field.CanAddr() {
		if tu, ok := field.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return tu.UnmarshalText([]byte(raw))
		}
	}
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetUint(v)
	default:
		return ErrLoadInvalidData.F("unsupported field type: %s", field.Type())
	}
	return nil
}
