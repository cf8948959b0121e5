package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/levelorder/internal/ctxlog"
	"github.com/specialistvlad/levelorder/internal/fsutil"
)

// Sequence is a named level-order input read from a `tree` block.
type Sequence struct {
	Name   string
	Values []int
	// Source is the file the block was declared in.
	Source string
}

// fileRoot is the top-level schema of an input file. Any other block type is
// rejected by the decoder.
type fileRoot struct {
	Trees []*treeBlock `hcl:"tree,block"`
}

type treeBlock struct {
	Name     string         `hcl:"name,label"`
	Values   hcl.Expression `hcl:"values"`
	DefRange hcl.Range      `hcl:",def_range"`
}

// Loader reads sequences from .hcl files.
type Loader struct{}

// NewLoader creates a new HCL sequence loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file reachable from paths and returns the declared
// sequences in discovery order. Tree names must be unique across all files.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*Sequence, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := evalContext()
	seen := make(map[string]hcl.Range)
	var sequences []*Sequence

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Trees {
			if prev, dup := seen[block.Name]; dup {
				return nil, fmt.Errorf("duplicate tree %q at %s, first declared at %s", block.Name, block.DefRange, prev)
			}
			seen[block.Name] = block.DefRange

			values, err := decodeValues(ctx, block.Values, evalCtx)
			if err != nil {
				return nil, fmt.Errorf("tree %q in %s: %w", block.Name, file, err)
			}
			logger.Debug("Decoded tree block.", "name", block.Name, "count", len(values))

			sequences = append(sequences, &Sequence{
				Name:   block.Name,
				Values: values,
				Source: file,
			})
		}
	}

	logger.Debug("HCL loading complete.", "trees", len(sequences))
	return sequences, nil
}

// findAllHCLFiles expands every path into a flat list of .hcl files, keeping
// the first occurrence of each file.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		files, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		for _, f := range files {
			if _, wasSeen := seen[f]; !wasSeen {
				allFiles = append(allFiles, f)
				seen[f] = struct{}{}
			}
		}
	}
	return allFiles, nil
}
