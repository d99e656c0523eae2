package filterexpr

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

type orderParams struct {
	PrimaryKey    string
	PrimaryDesc   bool
	SecondaryKey  string
	SecondaryDesc bool
}

// parseOrderBy reads "key [asc|desc][, key [asc|desc]]". A missing second key
// falls back to the schema's fallback; when that equals the primary key the
// next whitelisted key is used so ordering stays total.
func parseOrderBy(raw string, schema OrderSchema) (orderParams, error) {
	if !slices.Contains(schema.Keys, schema.DefaultPrimary) {
		return orderParams{}, fmt.Errorf("order key %q missing from schema keys", schema.DefaultPrimary)
	}
	if !slices.Contains(schema.Keys, schema.FallbackKey) {
		return orderParams{}, fmt.Errorf("fallback order key %q missing from schema keys", schema.FallbackKey)
	}

	ord := orderParams{
		PrimaryKey:  schema.DefaultPrimary,
		PrimaryDesc: schema.DefaultPrimaryDesc,
	}

	var n int
	for _, seg := range strings.Split(raw, ",") {
		parts := strings.Fields(seg)
		if len(parts) == 0 {
			continue
		}
		key := parts[0]
		if !slices.Contains(schema.Keys, key) {
			return orderParams{}, fmt.Errorf("field %q cannot be used for ordering", key)
		}
		desc := false
		switch len(parts) {
		case 1:
		case 2:
			switch strings.ToLower(parts[1]) {
			case "asc":
			case "desc":
				desc = true
			default:
				return orderParams{}, fmt.Errorf("invalid direction %q for field %q", parts[1], key)
			}
		default:
			return orderParams{}, fmt.Errorf("invalid order segment %q", strings.TrimSpace(seg))
		}

		switch n {
		case 0:
			ord.PrimaryKey, ord.PrimaryDesc = key, desc
		case 1:
			if key == ord.PrimaryKey {
				return orderParams{}, fmt.Errorf("duplicate order key %q", key)
			}
			ord.SecondaryKey, ord.SecondaryDesc = key, desc
		default:
			return orderParams{}, errors.New("order_by supports at most two keys")
		}
		n++
	}

	if ord.SecondaryKey == "" {
		ord.SecondaryKey, ord.SecondaryDesc = schema.FallbackKey, schema.FallbackDesc
	}
	if ord.SecondaryKey == ord.PrimaryKey {
		idx := slices.IndexFunc(schema.Keys, func(k string) bool { return k != ord.PrimaryKey })
		if idx < 0 {
			return orderParams{}, errors.New("order schema requires at least two distinct keys for stable ordering")
		}
		ord.SecondaryKey, ord.SecondaryDesc = schema.Keys[idx], false
	}
	return ord, nil
}

func setOrderParams(target reflect.Value, ord orderParams) error {
	values := []struct {
		name  string
		value any
	}{
		{"PrimaryKey", ord.PrimaryKey},
		{"PrimaryDesc", ord.PrimaryDesc},
		{"SecondaryKey", ord.SecondaryKey},
		{"SecondaryDesc", ord.SecondaryDesc},
	}
	for _, v := range values {
		field := target.FieldByName(v.name)
		if !field.IsValid() {
			return fmt.Errorf("params struct %s has no field named %q", target.Type(), v.name)
		}
		if !field.CanSet() {
			return fmt.Errorf("cannot set field %q on params struct", v.name)
		}
		value := reflect.ValueOf(v.value)
		if !value.Type().ConvertibleTo(field.Type()) {
			return fmt.Errorf("field %q must be %s-compatible, got %s", v.name, field.Type(), value.Type())
		}
		field.Set(value.Convert(field.Type()))
	}
	return nil
}
