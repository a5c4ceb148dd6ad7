package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/backmassage/see/internal/config"
)

// decodeLiteral parses one JSON or YAML document into a runtime value.
// FormatAuto tries JSON first (the stricter syntax), then YAML.
func decodeLiteral(data []byte, format config.InputFormat) (any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty input: pass a JSON or YAML literal")
	}

	switch format {
	case config.FormatJSON:
		return decodeJSON(trimmed)
	case config.FormatYAML:
		return decodeYAML(trimmed)
	default:
		if v, err := decodeJSON(trimmed); err == nil {
			return v, nil
		}
		return decodeYAML(trimmed)
	}
}

func decodeJSON(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	return v, nil
}

func decodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	return v, nil
}
