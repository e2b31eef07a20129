package reference

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"visia/internal/errors"
)

// tableFile is the HCL schema for a published reference table version.
type tableFile struct {
	Version    string           `hcl:"version"`
	Published  string           `hcl:"published,optional"`
	Indicators []indicatorBlock `hcl:"indicator,block"`
	Bands      []bandBlock      `hcl:"sroi_band,block"`
}

type indicatorBlock struct {
	Key       string    `hcl:"key,label"`
	Value     cty.Value `hcl:"value"`
	Unit      string    `hcl:"unit,optional"`
	Source    string    `hcl:"source,optional"`
	ValidFrom string    `hcl:"valid_from,optional"`
	ValidTo   string    `hcl:"valid_to,optional"`
}

type bandBlock struct {
	ProjectType string    `hcl:"project_type,label"`
	Min         cty.Value `hcl:"min"`
	Max         cty.Value `hcl:"max"`
	Avg         cty.Value `hcl:"avg"`
}

// ParseHCL parses a reference table version from HCL source. Numbers are
// decoded through cty at full precision, never through float64.
func ParseHCL(filename string, src []byte) (*Table, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Config(fmt.Sprintf("failed to parse reference table %s", filename), diags)
	}

	var tf tableFile
	if diags := gohcl.DecodeBody(file.Body, nil, &tf); diags.HasErrors() {
		return nil, errors.Config(fmt.Sprintf("failed to decode reference table %s", filename), diags)
	}

	builder := NewBuilder(tf.Version).WithPublished(tf.Published)

	for _, block := range tf.Indicators {
		value, err := decimalFromCty(block.Value)
		if err != nil {
			return nil, errors.Config(fmt.Sprintf("indicator %q in %s has a non-numeric value", block.Key, filename), err)
		}
		builder.AddIndicator(Indicator{
			Key:       block.Key,
			Value:     value,
			Unit:      block.Unit,
			Source:    block.Source,
			ValidFrom: block.ValidFrom,
			ValidTo:   block.ValidTo,
		})
	}

	for _, block := range tf.Bands {
		band := Band{}
		var err error
		if band.Min, err = decimalFromCty(block.Min); err != nil {
			return nil, errors.Config(fmt.Sprintf("sroi_band %q in %s has a non-numeric min", block.ProjectType, filename), err)
		}
		if band.Max, err = decimalFromCty(block.Max); err != nil {
			return nil, errors.Config(fmt.Sprintf("sroi_band %q in %s has a non-numeric max", block.ProjectType, filename), err)
		}
		if band.Avg, err = decimalFromCty(block.Avg); err != nil {
			return nil, errors.Config(fmt.Sprintf("sroi_band %q in %s has a non-numeric avg", block.ProjectType, filename), err)
		}
		builder.AddBand(block.ProjectType, band)
	}

	return builder.Build()
}

func decimalFromCty(v cty.Value) (decimal.Decimal, error) {
	if v.IsNull() || !v.Type().Equals(cty.Number) {
		return decimal.Zero, fmt.Errorf("expected a number, got %s", v.Type().FriendlyName())
	}
	return decimal.NewFromString(v.AsBigFloat().Text('f', -1))
}
