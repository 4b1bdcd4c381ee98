package model

import "github.com/raduionita-wk/xsdgen/internal/xsderr"

// SelectRoot implements §4.4: the root is the one top-level element whose
// name is never referenced by any top-level element (itself included),
// either directly through a `ref`/`type` or as the name of a direct child
// of one of its inline content types. Named-vs-anonymous distinctions
// don't matter here, only reachability.
func SelectRoot(types map[string]*TypeSpec, elements []*ElementSpec) (*ElementSpec, error) {
	if len(elements) == 0 {
		return nil, xsderr.Format("No elements found")
	}

	referenced := referencedNames(elements)
	var independent []*ElementSpec
	for _, e := range elements {
		if !referenced[e.getName()] {
			independent = append(independent, e)
		}
	}

	switch len(independent) {
	case 0:
		return nil, xsderr.Format("No independent elements found")
	case 1:
		return independent[0], nil
	default:
		return nil, xsderr.Format("Multiple independent (root) elements found")
	}
}

// referencedNames implements §4.4 step 1 literally: for each top-level
// element, its own `reference` and `type_info` strings are referenced
// names, and — only for inline content — so is the name (or, lacking one,
// the reference) of every element in that inline TypeSpec's own Elements
// and Groups. The walk is one level deep: inline types nested inside those
// child elements are not visited, and a named type's children are never
// visited, so an unrelated named type's nested element names play no part
// in reachability.
func referencedNames(elements []*ElementSpec) map[string]bool {
	seen := make(map[string]bool)

	var walkType func(t *TypeSpec)
	walkType = func(t *TypeSpec) {
		if t == nil {
			return
		}
		for _, e := range t.Elements {
			seen[e.getName()] = true
		}
		for _, g := range t.Groups {
			for _, e := range g.Elements {
				seen[e.getName()] = true
			}
		}
	}

	for _, e := range elements {
		addElementRefs(seen, e)
		for _, t := range e.Contents {
			walkType(t)
		}
	}
	return seen
}

// addElementRefs marks e's own reference and type name (if any) as
// referenced; both are plain strings naming another element/type, not a
// recursive walk, so this never chases into a named type's own body.
func addElementRefs(seen map[string]bool, e *ElementSpec) {
	if e.Reference != "" {
		seen[e.Reference] = true
	}
	if e.TypeName != "" {
		seen[e.TypeName] = true
	}
}
