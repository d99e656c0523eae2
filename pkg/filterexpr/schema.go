// Package filterexpr binds a CEL filter string and an order_by string onto a
// plain params struct. Filters are restricted to AND-ed comparisons between a
// whitelisted identifier and a literal; each (field, operator) pair names the
// struct field that receives the literal.
package filterexpr

import "reflect"

// Msg wraps request DTOs that expose filter and order_by raw inputs.
type Msg interface {
	GetFilter() string
	GetOrderBy() string
}

// ValueKind describes the kind of literal value a field accepts.
type ValueKind string

const (
	KindString ValueKind = "string"
	KindNumber ValueKind = "number"
	KindBool   ValueKind = "bool"
	// KindDate accepts 'YYYY-MM-DD' strings or date('YYYY-MM-DD') and binds a time.Time.
	KindDate ValueKind = "date"
)

// Op represents a supported comparison operation.
type Op string

const (
	OpEQ  Op = "=="
	OpGT  Op = ">"
	OpGTE Op = ">="
	OpLT  Op = "<"
	OpLTE Op = "<="
	OpSW  Op = "startsWith"
	OpIN  Op = "in"
)

// SetterFunc allows custom assignment of literal values to struct fields.
type SetterFunc func(field reflect.Value, value any) error

// Field describes a filterable identifier: its literal kind and, per
// operator, the params struct field that receives the literal.
type Field struct {
	Kind   ValueKind
	Ops    map[Op]string
	Setter SetterFunc
}

// OrderSchema whitelists order keys and the defaults used when order_by is
// empty or names a single key.
type OrderSchema struct {
	DefaultPrimary     string
	DefaultPrimaryDesc bool
	FallbackKey        string
	FallbackDesc       bool
	Keys               []string
}

// Schema aggregates filtering and ordering rules for a resource.
type Schema struct {
	Filter map[string]Field
	Order  OrderSchema
}
