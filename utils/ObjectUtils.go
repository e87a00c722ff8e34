package utils

import (
	"reflect"
	"strings"
)

// StructToMap 按 json tag 将结构体转为 map，带 omitempty 的零值字段会被跳过
func StructToMap(obj interface{}) map[string]interface{} {
	result := make(map[string]interface{})
	if obj == nil {
		return result
	}

	v := reflect.ValueOf(obj)
	t := reflect.TypeOf(obj)

	// 处理指针
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return result
		}
		v = v.Elem()
		t = t.Elem()
	}

	if v.Kind() != reflect.Struct {
		return result
	}

	for i := 0; i < v.NumField(); i++ {
		fieldType := t.Field(i)
		fieldValue := v.Field(i)

		// 跳过未导出字段
		if !fieldValue.CanInterface() {
			continue
		}

		// 读取 json tag
		tag := fieldType.Tag.Get("json")

		// json:"-" 直接跳过
		if tag == "-" {
			continue
		}

		key := tag
		omitEmpty := false
		if key == "" {
			// 没有 tag → 用字段名转小驼峰
			key = lowerCamel(fieldType.Name)
		} else {
			parts := strings.Split(key, ",")
			key = parts[0]
			for _, opt := range parts[1:] {
				if opt == "omitempty" {
					omitEmpty = true
				}
			}
			if key == "" {
				key = lowerCamel(fieldType.Name)
			}
		}

		if omitEmpty && fieldValue.IsZero() {
			continue
		}
		result[key] = fieldValue.Interface()
	}

	return result
}

func lowerCamel(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
