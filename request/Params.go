package request

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"

	"lb-front/utils"
)

// toValues 将查询参数转为 url.Values
//
// 支持 url.Values、map[string]string、map[string]any 以及带 json tag 的结构体。
func toValues(params any) (url.Values, error) {
	values := url.Values{}
	switch p := params.(type) {
	case nil:
		return values, nil
	case url.Values:
		for k, vs := range p {
			values[k] = append([]string(nil), vs...)
		}
		return values, nil
	case map[string]string:
		for k, v := range p {
			values.Set(k, v)
		}
		return values, nil
	case map[string]any:
		addAll(values, p)
		return values, nil
	}

	rv := reflect.ValueOf(params)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return values, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("不支持的查询参数类型: %T", params)
	}
	addAll(values, utils.StructToMap(params))
	return values, nil
}

func addAll(values url.Values, m map[string]any) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := m[k]
		if v == nil {
			continue
		}
		rv := reflect.ValueOf(v)
		if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type().Elem().Kind() != reflect.Uint8 {
			for i := 0; i < rv.Len(); i++ {
				values.Add(k, fmt.Sprint(rv.Index(i).Interface()))
			}
			continue
		}
		values.Add(k, fmt.Sprint(v))
	}
}
