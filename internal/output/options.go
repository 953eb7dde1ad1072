package output

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

// ApplyListOptions applies --result-limit and --result-sort-by to list
// output. Non-list data passes through untouched.
func ApplyListOptions(ctx context.Context, data interface{}) interface{} {
	if data == nil {
		return data
	}

	limit := LimitFromContext(ctx)
	sortBy, desc := SortFromContext(ctx)
	if limit == 0 && sortBy == "" {
		return data
	}

	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return data
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return data
	}
	if v.Len() == 0 {
		return data
	}

	// Copy to avoid mutating the caller's slice.
	sliceType := v.Type()
	if v.Kind() == reflect.Array {
		sliceType = reflect.SliceOf(v.Type().Elem())
	}
	items := reflect.MakeSlice(sliceType, v.Len(), v.Len())
	reflect.Copy(items, v)

	if sortBy != "" {
		path := strings.Split(sortBy, ".")
		sort.SliceStable(items.Interface(), func(i, j int) bool {
			av, aok := sortableValue(items.Index(i), path)
			bv, bok := sortableValue(items.Index(j), path)
			if !aok {
				return false
			}
			if !bok {
				return true
			}
			cmp := compareValues(av, bv)
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	}

	if limit > 0 && limit < items.Len() {
		items = items.Slice(0, limit)
	}

	return items.Interface()
}

// sortableValue walks a dotted field path through structs and
// string-keyed maps, matching names case-insensitively and ignoring
// underscores and dashes (json tags included).
func sortableValue(v reflect.Value, path []string) (interface{}, bool) {
	if !v.IsValid() || len(path) == 0 {
		return nil, false
	}

	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		norm := normalizeName(path[0])
		for _, key := range v.MapKeys() {
			keyStr, ok := key.Interface().(string)
			if !ok || normalizeName(keyStr) != norm {
				continue
			}
			val := v.MapIndex(key)
			if len(path) == 1 {
				return val.Interface(), true
			}
			return sortableValue(val, path[1:])
		}
		return nil, false
	case reflect.Struct:
		norm := normalizeName(path[0])
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() || normalizeName(fieldLabel(f)) != norm {
				continue
			}
			if len(path) == 1 {
				return v.Field(i).Interface(), true
			}
			return sortableValue(v.Field(i), path[1:])
		}
		return nil, false
	default:
		if len(path) == 1 {
			return v.Interface(), true
		}
		return nil, false
	}
}

func normalizeName(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(s, "_", ""), "-", ""))
}

func compareValues(a, b interface{}) int {
	switch va := a.(type) {
	case string:
		vb, ok := b.(string)
		if !ok {
			return 0
		}
		return strings.Compare(va, vb)
	case int:
		vb, ok := b.(int)
		if !ok {
			return 0
		}
		return compareOrdered(va, vb)
	case int64:
		vb, ok := b.(int64)
		if !ok {
			return 0
		}
		return compareOrdered(va, vb)
	case float64:
		vb, ok := b.(float64)
		if !ok {
			return 0
		}
		return compareOrdered(va, vb)
	case time.Time:
		vb, ok := b.(time.Time)
		if !ok {
			return 0
		}
		if va.Before(vb) {
			return -1
		}
		if va.After(vb) {
			return 1
		}
		return 0
	default:
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

func compareOrdered[T int | int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
