// internal/catalog/catalog.go
// Package catalog enumerates the Garnoldi filters and comparison models whose
// measurement files feed the plots, and maps each of them to its file name.
package catalog

import (
	"fmt"
	"strings"
)

// Filter identifies one Garnoldi filter variant.
type Filter string

// The four Garnoldi filter variants, in enumeration order.
const (
	G0 Filter = "g0"
	G1 Filter = "g1"
	G2 Filter = "g2"
	G3 Filter = "g3"
)

// Model identifies one comparison baseline.
type Model string

// The comparison baselines, in enumeration order.
const (
	APPNP  Model = "APPNP"
	AFDGCN Model = "AFDGCN"
	GPRGNN Model = "GPRGNN"
)

// Filters returns the filter variants in enumeration order.
func Filters() []Filter {
	return []Filter{G0, G1, G2, G3}
}

// Models returns the comparison baselines in enumeration order.
func Models() []Model {
	return []Model{APPNP, AFDGCN, GPRGNN}
}

// Kind distinguishes filter categories from model categories.
type Kind int

const (
	KindFilter Kind = iota
	KindModel
)

func (k Kind) String() string {
	switch k {
	case KindFilter:
		return "filter"
	case KindModel:
		return "model"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Category is exactly one filter or one model.
type Category struct {
	kind   Kind
	filter Filter
	model  Model
}

// FilterCategory wraps a filter.
func FilterCategory(f Filter) Category {
	return Category{kind: KindFilter, filter: f}
}

// ModelCategory wraps a model.
func ModelCategory(m Model) Category {
	return Category{kind: KindModel, model: m}
}

// All returns every category: filters first, then models.
func All() []Category {
	out := make([]Category, 0, 7)
	for _, f := range Filters() {
		out = append(out, FilterCategory(f))
	}
	for _, m := range Models() {
		out = append(out, ModelCategory(m))
	}
	return out
}

// Kind reports whether the category is a filter or a model.
func (c Category) Kind() Kind { return c.kind }

// Filter returns the wrapped filter and whether the category is a filter.
func (c Category) Filter() (Filter, bool) {
	return c.filter, c.kind == KindFilter
}

// Model returns the wrapped model and whether the category is a model.
func (c Category) Model() (Model, bool) {
	return c.model, c.kind == KindModel
}

// ID returns the bare identifier ("g2", "APPNP").
func (c Category) ID() string {
	if c.kind == KindFilter {
		return string(c.filter)
	}
	return string(c.model)
}

func (c Category) String() string {
	return c.kind.String() + ":" + c.ID()
}

// FileName returns the measurement file name for this category under basis.
//
//	filter: mae_values_garnoldi_<basis>_<filter>.csv
//	model:  mae_values_<model>_<basis>.csv
func (c Category) FileName(basis string) string {
	b := BasisKey(basis)
	if c.kind == KindFilter {
		return fmt.Sprintf("mae_values_garnoldi_%s_%s.csv", b, c.filter)
	}
	return fmt.Sprintf("mae_values_%s_%s.csv", strings.ToLower(string(c.model)), b)
}

// BasisKey is the lower-cased basis name used in directory and file names.
func BasisKey(basis string) string {
	return strings.ToLower(basis)
}
