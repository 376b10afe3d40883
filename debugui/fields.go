package debugui

import (
	"reflect"
	"sync"
)

// FieldInfo describes one exported struct field.
type FieldInfo struct {
	Name      string
	Type      reflect.Type
	Index     int
	IsPointer bool
	IsStruct  bool
}

type fieldCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]FieldInfo
}

func newFieldCache() *fieldCache {
	return &fieldCache{fields: make(map[reflect.Type][]FieldInfo)}
}

// get returns the exported fields of t, or nil when t is not a struct.
func (c *fieldCache) get(t reflect.Type) []FieldInfo {
	c.mu.RLock()
	cached, ok := c.fields[t]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.fields[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			ft := field.Type
			isPointer := ft.Kind() == reflect.Ptr
			if isPointer {
				ft = ft.Elem()
			}
			fields = append(fields, FieldInfo{
				Name:      field.Name,
				Type:      ft,
				Index:     i,
				IsPointer: isPointer,
				IsStruct:  ft.Kind() == reflect.Struct,
			})
		}
	}
	c.fields[t] = fields
	return fields
}

var structFields = newFieldCache()

// Fields lists the exported fields of t. Results are cached per type.
func Fields(t reflect.Type) []FieldInfo {
	return structFields.get(t)
}
