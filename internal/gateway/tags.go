package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/projectunified/unidialog-go/internal/model"
	"github.com/projectunified/unidialog-go/internal/nbt"
)

// compoundFromJSON builds the click payload compound from its JSON form.
// A nil map yields a nil tag, which decodes to an empty payload.
func compoundFromJSON(entries map[string]model.TagValue) (nbt.Tag, error) {
	if entries == nil {
		return nil, nil
	}
	c := make(nbt.Compound, len(entries))
	for k, v := range entries {
		t, err := tagFromJSON(v)
		if err != nil {
			return nil, fmt.Errorf("payload %q: %w", k, err)
		}
		c[k] = t
	}
	return c, nil
}

func tagFromJSON(v model.TagValue) (nbt.Tag, error) {
	switch v.Type {
	case "bool":
		var b bool
		if err := json.Unmarshal(v.Value, &b); err != nil {
			return nil, err
		}
		return nbt.BoolByte(b), nil
	case "byte":
		var n int8
		if err := json.Unmarshal(v.Value, &n); err != nil {
			return nil, err
		}
		return nbt.Byte(n), nil
	case "short":
		var n int16
		if err := json.Unmarshal(v.Value, &n); err != nil {
			return nil, err
		}
		return nbt.Short(n), nil
	case "int":
		var n int32
		if err := json.Unmarshal(v.Value, &n); err != nil {
			return nil, err
		}
		return nbt.Int(n), nil
	case "long":
		var n int64
		if err := json.Unmarshal(v.Value, &n); err != nil {
			return nil, err
		}
		return nbt.Long(n), nil
	case "float":
		var f float32
		if err := json.Unmarshal(v.Value, &f); err != nil {
			return nil, err
		}
		return nbt.Float(f), nil
	case "double":
		var f float64
		if err := json.Unmarshal(v.Value, &f); err != nil {
			return nil, err
		}
		return nbt.Double(f), nil
	case "string":
		var s string
		if err := json.Unmarshal(v.Value, &s); err != nil {
			return nil, err
		}
		return nbt.String(s), nil
	case "byte_array":
		var a []int8
		if err := json.Unmarshal(v.Value, &a); err != nil {
			return nil, err
		}
		return nbt.ByteArray(a), nil
	case "int_array":
		var a []int32
		if err := json.Unmarshal(v.Value, &a); err != nil {
			return nil, err
		}
		return nbt.IntArray(a), nil
	case "long_array":
		var a []int64
		if err := json.Unmarshal(v.Value, &a); err != nil {
			return nil, err
		}
		return nbt.LongArray(a), nil
	case "list":
		var items []model.TagValue
		if err := json.Unmarshal(v.Value, &items); err != nil {
			return nil, err
		}
		return listFromJSON(items)
	case "compound":
		var nested map[string]model.TagValue
		if err := json.Unmarshal(v.Value, &nested); err != nil {
			return nil, err
		}
		if nested == nil {
			nested = map[string]model.TagValue{}
		}
		return compoundFromJSON(nested)
	default:
		return nil, fmt.Errorf("unsupported tag type %q", v.Type)
	}
}

// listFromJSON builds a list whose element type is taken from the first item.
// An empty list has element type End. Mixed element types are rejected.
func listFromJSON(items []model.TagValue) (nbt.Tag, error) {
	l := nbt.List{Elem: nbt.TypeEnd, Items: make([]nbt.Tag, 0, len(items))}
	for i, item := range items {
		t, err := tagFromJSON(item)
		if err != nil {
			return nil, fmt.Errorf("list[%d]: %w", i, err)
		}
		if i == 0 {
			l.Elem = t.Type()
		} else if t.Type() != l.Elem {
			return nil, fmt.Errorf("list[%d]: %s in a list of %s", i, t.Type(), l.Elem)
		}
		l.Items = append(l.Items, t)
	}
	return l, nil
}
