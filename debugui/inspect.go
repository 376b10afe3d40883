package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
)

// Inspect draws the fields of the struct ptr points to. When editable, numbers, flags and
// strings get input widgets and edits are written back through ptr. It reports whether any
// field changed.
func Inspect(id string, ptr any, editable bool) bool {
	val := reflect.ValueOf(ptr)
	if val.Kind() != reflect.Ptr || val.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("debugui: Inspect needs a struct pointer, got %T", ptr))
	}
	return inspectStruct(id, val.Elem(), editable)
}

func inspectStruct(id string, val reflect.Value, editable bool) bool {
	changed := false
	for _, field := range Fields(val.Type()) {
		fv := val.Field(field.Index)
		if field.IsPointer {
			if fv.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fv = fv.Elem()
		}
		if inspectField(id+"."+field.Name, field.Name, fv, editable) {
			changed = true
		}
	}
	return changed
}

func inspectField(id, name string, val reflect.Value, editable bool) bool {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return false
	}

	// Enums and durations read better through their String method.
	if val.CanInterface() {
		if s, ok := val.Interface().(fmt.Stringer); ok && val.Kind() != reflect.Struct {
			imgui.Text(fmt.Sprintf("%s: %s", name, s.String()))
			return false
		}
	}

	canEdit := editable && val.CanSet()
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if !canEdit {
			imgui.Text(fmt.Sprintf("%s: %d", name, val.Int()))
			return false
		}
		v := int32(val.Int())
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt("##"+id, &v) {
			val.SetInt(int64(v))
			return true
		}

	case reflect.Float32, reflect.Float64:
		if !canEdit {
			imgui.Text(fmt.Sprintf("%s: %.3f", name, val.Float()))
			return false
		}
		v := float32(val.Float())
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat("##"+id, &v) {
			val.SetFloat(float64(v))
			return true
		}

	case reflect.Bool:
		if !canEdit {
			imgui.Text(fmt.Sprintf("%s: %t", name, val.Bool()))
			return false
		}
		v := val.Bool()
		if imgui.Checkbox(name+"##"+id, &v) {
			val.SetBool(v)
			return true
		}

	case reflect.String:
		if !canEdit {
			imgui.Text(fmt.Sprintf("%s: %q", name, val.String()))
			return false
		}
		v := val.String()
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint("##"+id, "", &v, imgui.InputTextFlagsNone, nil) {
			val.SetString(v)
			return true
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			changed := inspectStruct(id, val, editable)
			imgui.TreePop()
			return changed
		}

	case reflect.Slice, reflect.Array:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))

	default:
		if val.CanInterface() {
			imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
		}
	}
	return false
}
