package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// itemRoot is the root name of a reference to another item, as in `item.db`.
const itemRoot = "item"

// traversalKey renders a traversal back to source form, e.g. `item.db`.
func traversalKey(t hcl.Traversal) string {
	return string(hclwrite.TokensForTraversal(t).Bytes())
}

// dependencyNames resolves a depends_on expression into item names. A static
// list is resolved element by element so references and strings can be mixed.
// Any other expression must evaluate, without variables, to a list of strings.
func dependencyNames(expr hcl.Expression) ([]string, hcl.Diagnostics) {
	if expr == nil {
		return nil, nil
	}

	elems, listDiags := hcl.ExprList(expr)
	if listDiags.HasErrors() {
		return evaluateNames(expr)
	}

	var diags hcl.Diagnostics
	names := make([]string, 0, len(elems))
	for _, elem := range elems {
		name, elemDiags := dependencyName(elem)
		diags = append(diags, elemDiags...)
		if !elemDiags.HasErrors() {
			names = append(names, name)
		}
	}
	return names, diags
}

// dependencyName resolves a single list element.
func dependencyName(expr hcl.Expression) (string, hcl.Diagnostics) {
	if traversal, tDiags := hcl.AbsTraversalForExpr(expr); !tDiags.HasErrors() {
		if len(traversal) == 2 && traversal.RootName() == itemRoot {
			if attr, ok := traversal[1].(hcl.TraverseAttr); ok {
				return attr.Name, nil
			}
		}
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid dependency reference",
			Detail:   fmt.Sprintf("The reference %s is not supported. Use item.<name> or a quoted item name.", traversalKey(traversal)),
			Subject:  expr.Range().Ptr(),
		}}
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() || !val.IsKnown() || val.Type() != cty.String {
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid dependency",
			Detail:   fmt.Sprintf("A dependency must be a string or an item reference, got %s.", val.Type().FriendlyName()),
			Subject:  expr.Range().Ptr(),
		}}
	}
	name := val.AsString()
	if name == "" {
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Empty dependency",
			Detail:   "A dependency name must not be empty.",
			Subject:  expr.Range().Ptr(),
		}}
	}
	return name, nil
}

// evaluateNames handles expressions that are not static lists, such as a
// null placeholder for an omitted attribute.
func evaluateNames(expr hcl.Expression) ([]string, hcl.Diagnostics) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}

	listVal, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid depends_on value",
			Detail:   fmt.Sprintf("Cannot convert %s to a list of strings: %s.", val.Type().FriendlyName(), err),
			Subject:  expr.Range().Ptr(),
		}}
	}

	var names []string
	if err := gocty.FromCtyValue(listVal, &names); err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid depends_on value",
			Detail:   err.Error(),
			Subject:  expr.Range().Ptr(),
		}}
	}
	for _, name := range names {
		if name == "" {
			return nil, hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  "Empty dependency",
				Detail:   "A dependency name must not be empty.",
				Subject:  expr.Range().Ptr(),
			}}
		}
	}
	return names, nil
}
