// Package config loads tool configuration in three layers: Default()
// methods on the config structs, the first readable YAML file, and
// environment variable overrides keyed by yaml tags.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

type Options struct {
	files     []string
	envPrefix string
}

type Option func(*Options)

// WithFiles adds candidate config files. The first one that exists is
// loaded; the rest are ignored.
func WithFiles(filenames ...string) Option {
	return func(o *Options) {
		o.files = append(o.files, filenames...)
	}
}

// WithEnv enables environment overrides with the given prefix, so a
// field tagged `yaml:"min_entropy"` maps to PREFIX_MIN_ENTROPY.
func WithEnv(prefix string) Option {
	return func(o *Options) {
		o.envPrefix = prefix
	}
}

// Load fills cfg, which must be a non-nil struct pointer. Later layers
// win: defaults, then file values, then environment values.
func Load(cfg any, options ...Option) error {
	opts := &Options{}
	for _, option := range options {
		option(opts)
	}

	elem, err := validatePointer(cfg)
	if err != nil {
		return err
	}

	callDefaults(elem)

	if err := loadFromFiles(cfg, opts.files); err != nil {
		return fmt.Errorf("failed to load config file: %w", err)
	}

	if opts.envPrefix != "" {
		if err := loadFromEnv(elem, strings.ToUpper(opts.envPrefix)); err != nil {
			return fmt.Errorf("failed to load from environment: %w", err)
		}
	}

	return nil
}

func validatePointer(cfg any) (reflect.Value, error) {
	value := reflect.ValueOf(cfg)
	if value.Kind() != reflect.Ptr || value.IsNil() {
		return reflect.Value{}, fmt.Errorf("config must be a non-nil pointer")
	}

	elem := value.Elem()
	if !elem.CanSet() {
		return reflect.Value{}, fmt.Errorf("config is not settable")
	}

	return elem, nil
}

func callDefaults(v reflect.Value) {
	if !v.CanSet() {
		return
	}

	switch v.Kind() {
	case reflect.Struct:
		if method := v.Addr().MethodByName("Default"); method.IsValid() {
			method.Call(nil)
		}

		for i := 0; i < v.NumField(); i++ {
			callDefaults(v.Field(i))
		}
	case reflect.Ptr:
		if !v.IsNil() {
			callDefaults(v.Elem())
		}
	}
}

func loadFromFiles(cfg any, files []string) error {
	for _, filename := range files {
		data, err := os.ReadFile(filename)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}

		return nil
	}

	return nil
}

func loadFromEnv(v reflect.Value, prefix string) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		envKey := prefix + "_" + strings.ToUpper(fieldTagName(fieldType))

		if field.Kind() == reflect.Struct {
			if err := loadFromEnv(field, envKey); err != nil {
				return err
			}
			continue
		}

		envValue := os.Getenv(envKey)
		if envValue == "" {
			continue
		}

		if err := setFromString(field, envValue); err != nil {
			return fmt.Errorf("%s: %w", envKey, err)
		}
	}

	return nil
}

func fieldTagName(fieldType reflect.StructField) string {
	yamlTag := fieldType.Tag.Get("yaml")
	if yamlTag != "" && yamlTag != "-" {
		return strings.Split(yamlTag, ",")[0]
	}

	return camelToSnake(fieldType.Name)
}

func camelToSnake(s string) string {
	var result strings.Builder

	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			result.WriteByte('_')
		}
		result.WriteRune(unicode.ToLower(r))
	}

	return result.String()
}

func setFromString(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Bool:
		val, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value %q", value)
		}
		field.SetBool(val)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer value %q", value)
		}
		if field.OverflowInt(val) {
			return fmt.Errorf("integer value %q overflows %s", value, field.Type())
		}
		field.SetInt(val)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid unsigned integer value %q", value)
		}
		if field.OverflowUint(val) {
			return fmt.Errorf("unsigned integer value %q overflows %s", value, field.Type())
		}
		field.SetUint(val)
	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		field.SetFloat(val)
	default:
		return fmt.Errorf("unsupported field type %s", field.Kind())
	}

	return nil
}
