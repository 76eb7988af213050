package config

import (
	"fmt"
	"math/big"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// Load reads the HCL file at path on top of base.
// A missing file keeps fs.ErrNotExist in the error chain.
func Load(path string, base Config) (Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return Parse(src, path, base)
}

// Parse reads HCL source held in memory; filename is used in diagnostics.
func Parse(src []byte, filename string, base Config) (Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("%w: %s", ErrSyntax, diags.Error())
	}

	return decode(f, base)
}

// decode applies every attribute of f to base.
func decode(f *hcl.File, base Config) (Config, error) {
	body, ok := f.Body.(*hclsyntax.Body)
	if !ok {
		return Config{}, fmt.Errorf("%w: file body not a *hclsyntax.Body", ErrSyntax)
	}
	if len(body.Blocks) > 0 {
		blk := body.Blocks[0]
		return Config{}, fmt.Errorf("%w: block %q at %s", ErrUnknownAttribute, blk.Type, blk.TypeRange)
	}

	cfg := base
	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return Config{}, fmt.Errorf("config: %s: %s", name, diags.Error())
		}
		var err error
		switch name {
		case "input":
			cfg.Input, err = asString(name, val)
		case "mode":
			cfg.Mode, err = asString(name, val)
		case "workers":
			cfg.Workers, err = asInt(name, val)
		case "verbose":
			cfg.Verbose, err = asBool(name, val)
		case "stats":
			cfg.Stats, err = asBool(name, val)
		default:
			err = fmt.Errorf("%w %q at %s", ErrUnknownAttribute, name, attr.NameRange)
		}
		if err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

func asString(name string, val cty.Value) (string, error) {
	if val.IsNull() || val.Type() != cty.String {
		return "", fmt.Errorf("%w: %s must be a string, got %s", ErrAttributeType, name, val.Type().FriendlyName())
	}

	return val.AsString(), nil
}

func asBool(name string, val cty.Value) (bool, error) {
	if val.IsNull() || val.Type() != cty.Bool {
		return false, fmt.Errorf("%w: %s must be a bool, got %s", ErrAttributeType, name, val.Type().FriendlyName())
	}

	return val.True(), nil
}

func asInt(name string, val cty.Value) (int, error) {
	if val.IsNull() || val.Type() != cty.Number {
		return 0, fmt.Errorf("%w: %s must be a number, got %s", ErrAttributeType, name, val.Type().FriendlyName())
	}
	bf := val.AsBigFloat()
	if !bf.IsInt() {
		return 0, fmt.Errorf("%w: %s must be a whole number, got %s", ErrAttributeType, name, bf.Text('g', 10))
	}
	n, acc := bf.Int64()
	if acc != big.Exact || n != int64(int(n)) {
		return 0, fmt.Errorf("%w: %s out of range", ErrAttributeType, name)
	}

	return int(n), nil
}
