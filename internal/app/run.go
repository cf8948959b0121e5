package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/levelorder/internal/bintree"
	"github.com/specialistvlad/levelorder/internal/ctxlog"
	"github.com/specialistvlad/levelorder/internal/hcl"
)

// Run builds a tree for every configured sequence and writes one inorder line
// per tree. Without an input path the built-in sequence is printed under the
// bare label.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.InputPath == "" {
		a.logger.Debug("No input path configured, using built-in sequence.", "values", DefaultValues)
		if err := a.render(ctx, Label+": ", DefaultValues); err != nil {
			return err
		}
		a.logger.Debug("App.Run method finished.")
		return nil
	}

	sequences, err := a.loadSequences(ctx)
	if err != nil {
		return err
	}
	if len(sequences) == 0 {
		a.logger.Warn("No tree blocks found in input.", "path", a.config.InputPath)
	}

	for _, seq := range sequences {
		label := fmt.Sprintf("%s (%s): ", Label, seq.Name)
		if err := a.render(ctx, label, seq.Values); err != nil {
			return err
		}
	}

	a.logger.Info("Traversal finished.", "trees", len(sequences))
	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) loadSequences(ctx context.Context) ([]*hcl.Sequence, error) {
	a.logger.Debug("Loading sequences.", "path", a.config.InputPath)
	sequences, err := a.loader.Load(ctx, a.config.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load sequences: %w", err)
	}
	a.logger.Debug("Sequences loaded.", "count", len(sequences))
	return sequences, nil
}

// render builds the tree for values and writes its inorder line.
func (a *App) render(ctx context.Context, label string, values []int) error {
	logger := ctxlog.FromContext(ctx)

	root := bintree.FromLevelOrder(values)
	logger.Debug("Tree built.", "label", label, "size", root.Size(), "height", root.Height())

	if err := bintree.WriteInorder(a.outW, label, root); err != nil {
		return fmt.Errorf("failed to write traversal: %w", err)
	}
	return nil
}
