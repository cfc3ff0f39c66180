package codec

import (
	"encoding/json"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/operator-framework/boundcheck/pkg/constraints"
)

var (
	comparatorType = reflect.TypeOf(constraints.Comparator(0))
	numberType     = reflect.TypeOf(json.Number(""))
)

// ComparatorHookFunc decodes strings such as "<=" or "gte" into a
// constraints.Comparator.
func ComparatorHookFunc() mapstructure.DecodeHookFunc {
	return comparatorHookFunc
}

func comparatorHookFunc(f, t reflect.Type, data interface{}) (interface{}, error) {
	if t != comparatorType || f.Kind() != reflect.String || f == numberType {
		return data, nil
	}
	return constraints.ParseComparator(reflect.ValueOf(data).String())
}

// LimitHookFunc lets a bare number stand for an inclusive
// constraints.Limit at that point.
func LimitHookFunc[T constraints.Value[T]]() mapstructure.DecodeHookFunc {
	limitType := reflect.TypeOf(constraints.Limit[T]{})
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t != limitType {
			return data, nil
		}
		switch f.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
		case reflect.String:
			if f != numberType {
				return data, nil
			}
		default:
			return data, nil
		}
		return map[string]interface{}{
			"point":     data,
			"inclusive": true,
		}, nil
	}
}
