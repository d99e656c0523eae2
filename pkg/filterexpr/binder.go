package filterexpr

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/cel-go/cel"
	exprpb "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// Bind parses the request filter & order_by and populates the params struct.
// The struct must carry PrimaryKey, PrimaryDesc, SecondaryKey and
// SecondaryDesc fields when the schema defines ordering.
func Bind[M Msg, P any](msg M, binding *P, schema Schema) error {
	if binding == nil {
		return errors.New("binding must not be nil")
	}
	dest := reflect.ValueOf(binding).Elem()
	if dest.Kind() != reflect.Struct {
		return errors.New("binding must point to a struct")
	}

	if err := bindFilter(dest, msg.GetFilter(), schema.Filter); err != nil {
		return fmt.Errorf("filter: %w", err)
	}

	if schema.Order.DefaultPrimary == "" {
		return nil
	}
	order, err := parseOrderBy(msg.GetOrderBy(), schema.Order)
	if err != nil {
		return fmt.Errorf("order_by: %w", err)
	}
	return setOrderParams(dest, order)
}

type predicate struct {
	Field string
	Op    Op
	Value any
}

func bindFilter(dest reflect.Value, filter string, fields map[string]Field) error {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return nil
	}
	if len(fields) == 0 {
		return errors.New("filter schema has no fields defined")
	}

	preds, err := parsePredicates(filter, fields)
	if err != nil {
		return err
	}

	for _, pred := range preds {
		rule, ok := fields[pred.Field]
		if !ok {
			return fmt.Errorf("field %q is not allowed", pred.Field)
		}
		targetName, ok := rule.Ops[pred.Op]
		if !ok {
			return fmt.Errorf("operator %q is not allowed for field %q", string(pred.Op), pred.Field)
		}
		value, err := coerceLiteral(rule.Kind, pred.Op, pred.Value)
		if err != nil {
			return fmt.Errorf("field %q: %w", pred.Field, err)
		}

		field := dest.FieldByName(targetName)
		if !field.IsValid() {
			return fmt.Errorf("params struct %s has no field named %q", dest.Type(), targetName)
		}
		if !field.CanSet() {
			return fmt.Errorf("cannot set field %q on params struct", targetName)
		}

		if rule.Setter != nil {
			if field.Kind() == reflect.Ptr && field.IsNil() {
				field.Set(reflect.New(field.Type().Elem()))
			}
			if err := rule.Setter(field, value); err != nil {
				return fmt.Errorf("setter for field %q failed: %w", targetName, err)
			}
			continue
		}
		if err := assignValue(field, value); err != nil {
			return fmt.Errorf("failed to assign field %q: %w", targetName, err)
		}
	}
	return nil
}

func parsePredicates(filter string, fields map[string]Field) ([]predicate, error) {
	env, err := buildEnv(fields)
	if err != nil {
		return nil, err
	}
	ast, issues := env.Parse(filter)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("invalid filter: %w", issues.Err())
	}
	parsed, err := cel.AstToParsedExpr(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to convert AST: %w", err)
	}
	conjuncts, err := flattenAnd(parsed.GetExpr())
	if err != nil {
		return nil, err
	}

	preds := make([]predicate, 0, len(conjuncts))
	for _, expr := range conjuncts {
		pred, err := parsePredicate(expr)
		if err != nil {
			return nil, err
		}
		preds = append(preds, pred)
	}
	return preds, nil
}

func buildEnv(fields map[string]Field) (*cel.Env, error) {
	opts := make([]cel.EnvOption, 0, len(fields)+1)
	for name, rule := range fields {
		var celType *cel.Type
		switch rule.Kind {
		case KindString, KindDate:
			celType = cel.StringType
		case KindNumber:
			celType = cel.DoubleType
		case KindBool:
			celType = cel.BoolType
		default:
			return nil, fmt.Errorf("field %q: unsupported field kind %s", name, rule.Kind)
		}
		opts = append(opts, cel.Variable(name, celType))
	}
	opts = append(opts, cel.CrossTypeNumericComparisons(true))
	return cel.NewEnv(opts...)
}

// flattenAnd splits nested && chains; any other logical operator is rejected.
func flattenAnd(expr *exprpb.Expr) ([]*exprpb.Expr, error) {
	if expr == nil {
		return nil, errors.New("empty expression")
	}
	call := expr.GetCallExpr()
	if call == nil {
		return []*exprpb.Expr{expr}, nil
	}

	switch call.Function {
	case "_&&_":
		var result []*exprpb.Expr
		for _, arg := range call.Args {
			conjuncts, err := flattenAnd(arg)
			if err != nil {
				return nil, err
			}
			result = append(result, conjuncts...)
		}
		return result, nil
	case "_||_", "_?_:_", "!_", "_!=_":
		return nil, fmt.Errorf("operator %q is not supported; only AND-ed comparisons are allowed", call.Function)
	default:
		return []*exprpb.Expr{expr}, nil
	}
}

var binaryOps = map[string]Op{
	"_==_": OpEQ,
	"_>_":  OpGT,
	"_>=_": OpGTE,
	"_<_":  OpLT,
	"_<=_": OpLTE,
}

func parsePredicate(expr *exprpb.Expr) (predicate, error) {
	call := expr.GetCallExpr()
	if call == nil {
		if ident := expr.GetIdentExpr(); ident != nil {
			// A bare identifier is shorthand for "ident == true".
			return predicate{Field: ident.GetName(), Op: OpEQ, Value: true}, nil
		}
		return predicate{}, errors.New("unsupported expression; expected comparison or function call")
	}

	if op, ok := binaryOps[call.Function]; ok {
		if call.Target != nil || len(call.Args) != 2 {
			return predicate{}, fmt.Errorf("operator %q expects two operands", string(op))
		}
		return buildPredicate(call.Args[0], call.Args[1], op)
	}

	switch call.Function {
	case "@in", "_in_":
		if len(call.Args) != 2 {
			return predicate{}, errors.New("in operator expects two operands")
		}
		return buildPredicate(call.Args[0], call.Args[1], OpIN)
	case "startsWith":
		if call.Target == nil || len(call.Args) != 1 {
			return predicate{}, errors.New("startsWith must be called as field.startsWith('prefix')")
		}
		pred, err := buildPredicate(call.Target, call.Args[0], OpSW)
		if err != nil {
			return predicate{}, err
		}
		if _, ok := pred.Value.(string); !ok {
			return predicate{}, errors.New("startsWith requires a string literal argument")
		}
		return pred, nil
	default:
		return predicate{}, fmt.Errorf("function %q is not supported", call.Function)
	}
}

func buildPredicate(fieldExpr, valueExpr *exprpb.Expr, op Op) (predicate, error) {
	ident := fieldExpr.GetIdentExpr()
	if ident == nil {
		return predicate{}, errors.New("left-hand side must be an identifier")
	}
	value, err := parseLiteral(valueExpr)
	if err != nil {
		return predicate{}, err
	}
	return predicate{Field: ident.GetName(), Op: op, Value: value}, nil
}
