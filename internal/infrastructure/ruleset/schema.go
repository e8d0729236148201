package ruleset

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/bnema/tinyguard/internal/domain/build"
	"github.com/bnema/tinyguard/internal/domain/entity"
)

// Schema returns the JSON schema of a rules file.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{DoNotReference: true}
	schema := r.Reflect(&[]entity.RuleRecord{})

	schema.ID = jsonschema.ID(build.RepoURL() + "/rules.schema.json")
	schema.Title = "TinyGuard rule table"
	schema.Description = "Static block rules compiled from a tracker list"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
