package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/levelorder/internal/ctxlog"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// evalContext returns the functions available inside `values` expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"concat":  stdlib.ConcatFunc,
			"range":   stdlib.RangeFunc,
			"reverse": stdlib.ReverseListFunc,
		},
	}
}

// decodeValues evaluates expr and decodes the result into a slice of whole
// numbers.
func decodeValues(ctx context.Context, expr hcl.Expression, evalCtx *hcl.EvalContext) ([]int, error) {
	logger := ctxlog.FromContext(ctx)

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, fmt.Errorf("values must not be null")
	}

	var out []int
	targetType, err := gocty.ImpliedType(out)
	if err != nil {
		return nil, fmt.Errorf("internal error: %w", err)
	}

	converted, err := convert.Convert(val, targetType)
	if err != nil {
		return nil, fmt.Errorf("cannot convert %s to required type %s: %w", val.Type().FriendlyName(), targetType.FriendlyName(), err)
	}
	if !val.Type().Equals(converted.Type()) {
		logger.Debug("Implicitly converted value type.",
			"from", val.Type().FriendlyName(),
			"to", converted.Type().FriendlyName(),
		)
	}

	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return nil, fmt.Errorf("invalid values: %w", err)
	}
	if out == nil {
		out = []int{}
	}
	return out, nil
}
