package hclpack

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/contractforge/internal/confignode"
	"github.com/vk/contractforge/internal/ctxlog"
	"github.com/vk/contractforge/internal/fsutil"
)

// Source holds all pack entries grouped by tag, across every parsed file.
type Source struct {
	byTag map[string][]confignode.Node
}

func newSource() *Source {
	return &Source{byTag: make(map[string][]confignode.Node)}
}

// NodesByTag returns all entries parsed under the given tag, in file walk
// and declaration order.
func (s *Source) NodesByTag(tag string) []confignode.Node {
	return s.byTag[tag]
}

// LoadDir parses every .hcl file under root into a Source. A parse or
// translation failure in any file is a fatal pack error; per-entry fault
// tolerance is the loading engine's job, not the parser's.
func LoadDir(ctx context.Context, root string) (*Source, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFilesByExtension(root, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find pack files in %s: %w", root, err)
	}
	if len(files) == 0 {
		logger.Warn("No .hcl pack files found in path, returning empty source.", "path", root)
		return newSource(), nil
	}

	parser := hclparse.NewParser()
	src := newSource()
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse pack file %s: %w", file, diags)
		}
		if err := src.addFile(hclFile, file); err != nil {
			return nil, err
		}
	}

	logger.Debug("Pack files parsed.", "files", len(files))
	return src, nil
}

// ParseBytes parses a single in-memory pack document. Used by fixtures and
// embedding hosts that do not read from disk.
func ParseBytes(ctx context.Context, filename string, data []byte) (*Source, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse pack document %s: %w", filename, diags)
	}

	src := newSource()
	if err := src.addFile(hclFile, filename); err != nil {
		return nil, err
	}
	return src, nil
}

// addFile translates every top-level block of a parsed file into a tagged
// entry.
func (s *Source) addFile(file *hcl.File, filename string) error {
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return fmt.Errorf("pack file %s: unsupported body type %T", filename, file.Body)
	}

	if len(body.Attributes) > 0 {
		return fmt.Errorf("pack file %s: top-level attributes are not allowed", filename)
	}

	for _, block := range body.Blocks {
		entry, err := buildNode(block)
		if err != nil {
			return fmt.Errorf("pack file %s: %w", filename, err)
		}
		s.byTag[block.Type] = append(s.byTag[block.Type], entry)
	}
	return nil
}

// buildNode recursively translates an HCL block into a config node. The
// block's first label, if any, becomes the node name.
func buildNode(block *hclsyntax.Block) (*node, error) {
	name := ""
	if len(block.Labels) > 0 {
		name = block.Labels[0]
	}
	n := newNode(name)

	// hclsyntax keeps attributes in a map; order them back by source
	// position so repeated-value sequences stay deterministic.
	attrs := make([]*hclsyntax.Attribute, 0, len(block.Body.Attributes))
	for _, attr := range block.Body.Attributes {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})

	for _, attr := range attrs {
		vals, err := valueStrings(attr.Expr)
		if err != nil {
			return nil, fmt.Errorf("block %q, attribute %q: %w", blockLabel(block), attr.Name, err)
		}
		n.addValues(attr.Name, vals)
	}

	for _, child := range block.Body.Blocks {
		childNode, err := buildNode(child)
		if err != nil {
			return nil, err
		}
		n.addChild(child.Type, childNode)
	}

	return n, nil
}

// valueStrings statically evaluates an attribute expression into its
// ordered string values. List-shaped values flatten into one value per
// element, which is how a pack spells a repeated key.
func valueStrings(expr hclsyntax.Expression) ([]string, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate value: %w", diags)
	}
	if val.IsNull() {
		return nil, fmt.Errorf("value must not be null")
	}

	ty := val.Type()
	if ty.IsTupleType() || ty.IsListType() || ty.IsSetType() {
		var out []string
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			str, err := stringValue(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, str)
		}
		return out, nil
	}

	str, err := stringValue(val)
	if err != nil {
		return nil, err
	}
	return []string{str}, nil
}

// stringValue converts a single scalar cty value to its string form.
func stringValue(val cty.Value) (string, error) {
	conv, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("value is not convertible to string: %w", err)
	}
	if conv.IsNull() {
		return "", fmt.Errorf("value must not be null")
	}
	return conv.AsString(), nil
}

func blockLabel(block *hclsyntax.Block) string {
	if len(block.Labels) > 0 {
		return block.Type + " " + block.Labels[0]
	}
	return block.Type
}
