package planner

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	vpcplan "github.com/lex00/vpcplan-aws-go"
)

// ToJSON serializes the template to JSON.
func ToJSON(t *vpcplan.Template) ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}

// ToYAML serializes the template to YAML.
func ToYAML(t *vpcplan.Template) ([]byte, error) {
	return yaml.Marshal(t)
}
