package node

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// ToAny converts n into plain Go values: nil, bool, int64, uint64, float64,
// string, []any and map[string]any. Member order is not preserved.
func ToAny(n Node) any {
	switch v := n.(type) {
	case nil, Null:
		return nil
	case Bool:
		return bool(v)
	case Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if u, err := v.Uint64(); err == nil {
			return u
		}
		f, _ := v.Float64()
		return f
	case String:
		return string(v)
	case Array:
		out := make([]any, len(v))
		for i, el := range v {
			out[i] = ToAny(el)
		}
		return out
	case *Object:
		out := make(map[string]any, v.Len())
		for _, k := range v.keys {
			out[k] = ToAny(v.vals[k])
		}
		return out
	}
	return nil
}

// FromAny converts decoded Go values back into a Node. Map members are added in
// sorted key order.
func FromAny(v any) (Node, error) {
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case json.Number:
		return Number(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Uint(uint64(x)), nil
	case uint8:
		return Uint(uint64(x)), nil
	case uint16:
		return Uint(uint64(x)), nil
	case uint32:
		return Uint(uint64(x)), nil
	case uint64:
		return Uint(x), nil
	case float32:
		return Float(float64(x), 32)
	case float64:
		return Float(x, 64)
	case []any:
		out := make(Array, len(x))
		for i, el := range x {
			n, err := FromAny(el)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = n
		}
		return out, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := NewObject(len(keys))
		for _, k := range keys {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", strconv.Quote(k), err)
			}
			obj.Set(k, n)
		}
		return obj, nil
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, el := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("node: non-string object key %T", k)
			}
			m[ks] = el
		}
		return FromAny(m)
	default:
		return nil, fmt.Errorf("node: cannot convert %T", v)
	}
}
