package lockfile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// TerraformParser parses .terraform.lock.hcl files, mapping each
// provider source address to its pinned version.
type TerraformParser struct{}

// NewTerraformParser creates a new Terraform lockfile parser.
func NewTerraformParser() *TerraformParser {
	return &TerraformParser{}
}

func (p *TerraformParser) Name() string { return "terraform" }

func (p *TerraformParser) Parse(content []byte) (map[string]string, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(content, ".terraform.lock.hcl")
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse .terraform.lock.hcl: %s", diags.Error())
	}

	bodyContent, _, diags := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "provider", LabelNames: []string{"source"}},
		},
	})
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to read provider blocks: %s", diags.Error())
	}

	versions := make(map[string]string, len(bodyContent.Blocks))
	for _, block := range bodyContent.Blocks {
		if block.Type != "provider" || len(block.Labels) == 0 {
			continue
		}

		attrs, _ := block.Body.JustAttributes()
		attr, ok := attrs["version"]
		if !ok {
			continue
		}

		value, valueDiags := attr.Expr.Value(nil)
		if valueDiags.HasErrors() || value.Type() != cty.String {
			continue
		}

		versions[block.Labels[0]] = value.AsString()
	}

	return versions, nil
}
