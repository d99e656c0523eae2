package filterexpr

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"time"

	exprpb "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

const dateLayout = "2006-01-02"

var timeType = reflect.TypeOf(time.Time{})

func parseLiteral(expr *exprpb.Expr) (any, error) {
	if constant := expr.GetConstExpr(); constant != nil {
		switch constant.ConstantKind.(type) {
		case *exprpb.Constant_StringValue:
			return constant.GetStringValue(), nil
		case *exprpb.Constant_Int64Value:
			return float64(constant.GetInt64Value()), nil
		case *exprpb.Constant_Uint64Value:
			return float64(constant.GetUint64Value()), nil
		case *exprpb.Constant_DoubleValue:
			return constant.GetDoubleValue(), nil
		case *exprpb.Constant_BoolValue:
			return constant.GetBoolValue(), nil
		default:
			return nil, fmt.Errorf("literal type %T is not supported", constant.ConstantKind)
		}
	}

	if list := expr.GetListExpr(); list != nil {
		elements := list.GetElements()
		values := make([]string, len(elements))
		for i, elem := range elements {
			val, err := parseLiteral(elem)
			if err != nil {
				return nil, fmt.Errorf("list literal element %d: %w", i, err)
			}
			str, ok := val.(string)
			if !ok {
				return nil, errors.New("list literal elements must be strings")
			}
			values[i] = str
		}
		return values, nil
	}

	if call := expr.GetCallExpr(); call != nil && call.Function == "date" {
		if call.Target != nil || len(call.Args) != 1 || call.Args[0].GetConstExpr() == nil {
			return nil, errors.New("date() expects a single string literal")
		}
		return parseDate(call.Args[0].GetConstExpr().GetStringValue())
	}

	return nil, errors.New("right-hand side must be a literal, list literal, or date() call")
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date literal %q is not YYYY-MM-DD", s)
	}
	return t, nil
}

// coerceLiteral checks value against the field kind and converts date strings.
func coerceLiteral(kind ValueKind, op Op, value any) (any, error) {
	switch kind {
	case KindString:
		if op == OpIN {
			list, ok := value.([]string)
			if !ok {
				return nil, fmt.Errorf("expected list of %s literals", kind)
			}
			if len(list) == 0 {
				return nil, errors.New("list literal must not be empty")
			}
			for _, item := range list {
				if item == "" {
					return nil, errors.New("list literal must not contain empty strings")
				}
			}
			return list, nil
		}
		if _, ok := value.(string); !ok {
			return nil, fmt.Errorf("expected %s literal", kind)
		}
	case KindNumber:
		if _, ok := value.(float64); !ok {
			return nil, fmt.Errorf("expected %s literal", kind)
		}
	case KindBool:
		if _, ok := value.(bool); !ok {
			return nil, fmt.Errorf("expected %s literal", kind)
		}
	case KindDate:
		switch v := value.(type) {
		case time.Time:
			return v, nil
		case string:
			return parseDate(v)
		default:
			return nil, fmt.Errorf("expected %s literal", kind)
		}
	default:
		return nil, fmt.Errorf("unsupported field kind %s", kind)
	}
	return value, nil
}

func assignValue(field reflect.Value, value any) error {
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return assignValue(field.Elem(), value)
	}
	if field.Kind() == reflect.Interface {
		field.Set(reflect.ValueOf(value))
		return nil
	}

	switch v := value.(type) {
	case string:
		if field.Kind() != reflect.String {
			return fmt.Errorf("expected string-compatible destination, got %s", field.Kind())
		}
		field.SetString(v)
	case bool:
		if field.Kind() != reflect.Bool {
			return fmt.Errorf("expected bool destination, got %s", field.Kind())
		}
		field.SetBool(v)
	case []string:
		if field.Kind() != reflect.Slice || field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("expected slice of strings destination, got %s", field.Type())
		}
		field.Set(reflect.ValueOf(append([]string(nil), v...)))
	case float64:
		return assignNumeric(field, v)
	case time.Time:
		if field.Type() != timeType {
			return fmt.Errorf("expected time.Time destination, got %s", field.Type())
		}
		field.Set(reflect.ValueOf(v))
	default:
		return fmt.Errorf("unsupported literal type %T", value)
	}
	return nil
}

func assignNumeric(field reflect.Value, value float64) error {
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		field.SetFloat(value)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if math.Trunc(value) != value {
			return fmt.Errorf("cannot assign non-integer value %v to integer field", value)
		}
		bits := field.Type().Bits()
		lo := -math.Pow(2, float64(bits-1))
		hi := math.Pow(2, float64(bits-1)) - 1
		if value < lo || value > hi {
			return fmt.Errorf("value %v overflows integer field", value)
		}
		field.SetInt(int64(value))
		return nil
	default:
		return fmt.Errorf("numeric assignment requires integer or float field, got %s", field.Kind())
	}
}
