package appconfig

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// settingsSchema describes the merged settings map. Top-level keys are
// lower-cased because viper normalizes them.
const settingsSchema = `{
  "type": "object",
  "properties": {
    "basedir":    {"type": "string"},
    "figuresdir": {"type": "string"},
    "dpi":        {"type": "integer", "minimum": 0, "maximum": 2400},
    "logfile":    {"type": "string"},
    "debug":      {"type": "boolean"},
    "bases": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name":        {"type": "string", "minLength": 1},
          "active":      {"type": "boolean"},
          "displayName": {"type": "string"},
          "displayname": {"type": "string"}
        }
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(settingsSchema)

// ValidateSettings checks a settings map (as produced by viper) against the
// configuration schema.
func ValidateSettings(settings map[string]any) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(settings))
	if err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
