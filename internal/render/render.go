// Package render turns parsed entries and versions into text, JSON, YAML or
// TOML output.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/indaco/entryline/internal/entry"
	"github.com/indaco/entryline/internal/printer"
	"github.com/indaco/entryline/internal/semver"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/sjson"
)

// Entry renders e in the given format. Output always ends with a newline.
func Entry(e entry.Entry, f Format) (string, error) {
	switch f {
	case FormatText:
		return entryText(e), nil
	case FormatJSON:
		return entryJSON(e)
	case FormatYAML:
		return marshalYAML(newEntryDocument(e))
	case FormatTOML:
		return marshalTOML(newEntryDocument(e))
	default:
		return "", fmt.Errorf("unsupported format: %s", f)
	}
}

// Version renders v in the given format. Output always ends with a newline.
func Version(v semver.Version, f Format) (string, error) {
	switch f {
	case FormatText:
		return v.String() + "\n", nil
	case FormatJSON:
		return versionJSON(v)
	case FormatYAML:
		return marshalYAML(newVersionDocument(v))
	case FormatTOML:
		return marshalTOML(newVersionDocument(v))
	default:
		return "", fmt.Errorf("unsupported format: %s", f)
	}
}

// Comparison renders the ordering of v against other. Text output reads
// "1.2.3 < 1.2.4"; structured output carries the order as -1, 0 or +1.
func Comparison(v, other semver.Version, f Format) (string, error) {
	doc := comparisonDocument{
		Version: v.String(),
		Other:   other.String(),
		Order:   v.Compare(other),
	}
	switch f {
	case FormatText:
		return fmt.Sprintf("%s %s %s\n", printer.Bold(doc.Version), printer.Info(orderSymbol(doc.Order)), printer.Bold(doc.Other)), nil
	case FormatJSON:
		return setJSON("version", doc.Version, "other", doc.Other, "order", doc.Order)
	case FormatYAML:
		return marshalYAML(doc)
	case FormatTOML:
		return marshalTOML(doc)
	default:
		return "", fmt.Errorf("unsupported format: %s", f)
	}
}

func orderSymbol(order int) string {
	switch {
	case order < 0:
		return "<"
	case order > 0:
		return ">"
	default:
		return "="
	}
}

func newEntryDocument(e entry.Entry) entryDocument {
	values := e.Values
	if values == nil {
		values = []int32{}
	}
	return entryDocument{
		Timestamp: e.Timestamp.UTC().Format(time.RFC3339),
		Version:   e.Version.String(),
		Major:     e.Version.Major,
		Minor:     e.Version.Minor,
		Patch:     e.Version.Patch,
		Extension: extension(e.Version),
		Max:       e.Max,
		Values:    values,
	}
}

func newVersionDocument(v semver.Version) versionDocument {
	return versionDocument{
		Version:   v.String(),
		Major:     v.Major,
		Minor:     v.Minor,
		Patch:     v.Patch,
		Extension: extension(v),
	}
}

func extension(v semver.Version) *string {
	if !v.HasExtension {
		return nil
	}
	ext := v.Extension
	return &ext
}

func entryText(e entry.Entry) string {
	var sb strings.Builder

	values := make([]string, len(e.Values))
	for i, v := range e.Values {
		values[i] = strconv.FormatInt(int64(v), 10)
	}

	fmt.Fprintln(&sb, printer.Field("timestamp", e.Timestamp.UTC().Format(time.RFC3339)))
	fmt.Fprintln(&sb, printer.Field("version", e.Version.String()))
	if e.Version.HasExtension {
		fmt.Fprintln(&sb, printer.Field("extension", e.Version.Extension))
	}
	fmt.Fprintln(&sb, printer.Field("max", strconv.FormatInt(int64(e.Max), 10)))
	fmt.Fprintln(&sb, printer.Field("values", strings.Join(values, ", ")))

	return sb.String()
}

// entryJSON builds the object key by key with sjson so field order is stable.
func entryJSON(e entry.Entry) (string, error) {
	doc := newEntryDocument(e)
	return setJSON(
		"timestamp", doc.Timestamp,
		"version", doc.Version,
		"major", doc.Major,
		"minor", doc.Minor,
		"patch", doc.Patch,
		"extension", doc.Extension,
		"max", doc.Max,
		"values", doc.Values,
	)
}

func versionJSON(v semver.Version) (string, error) {
	doc := newVersionDocument(v)
	return setJSON(
		"version", doc.Version,
		"major", doc.Major,
		"minor", doc.Minor,
		"patch", doc.Patch,
		"extension", doc.Extension,
	)
}

// setJSON applies path/value pairs to an empty object. Nil *string values
// are skipped.
func setJSON(pairs ...any) (string, error) {
	out := "{}"
	for i := 0; i+1 < len(pairs); i += 2 {
		path := pairs[i].(string)
		value := pairs[i+1]
		if s, ok := value.(*string); ok {
			if s == nil {
				continue
			}
			value = *s
		}

		var err error
		out, err = sjson.Set(out, path, value)
		if err != nil {
			return "", fmt.Errorf("failed to set %q: %w", path, err)
		}
	}
	return out + "\n", nil
}

func marshalYAML(doc any) (string, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return string(data), nil
}

func marshalTOML(doc any) (string, error) {
	data, err := toml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal TOML: %w", err)
	}
	return string(data), nil
}
