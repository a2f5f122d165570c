package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

type format struct {
	unmarshal func([]byte, any) error
	marshal   func(any) ([]byte, error)
}

var (
	yamlFormat = format{unmarshal: yaml.Unmarshal, marshal: yaml.Marshal}
	tomlFormat = format{unmarshal: toml.Unmarshal, marshal: toml.Marshal}
	jsonFormat = format{
		// Comments and trailing commas are stripped before decoding.
		unmarshal: func(data []byte, v any) error {
			return json.Unmarshal(jsonc.ToJSON(data), v)
		},
		marshal: func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		},
	}
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlFormat, nil
	case ".toml":
		return tomlFormat, nil
	case ".json", ".jsonc":
		return jsonFormat, nil
	}
	return format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}
