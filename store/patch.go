// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "reflect"

// applyPatch returns cur with every non-nil pointer field of patch copied onto
// the field of the same name. A patch field *T fills a target of type T; a
// patch field *T also fills a target of type *T with a fresh pointer, so the
// result never aliases the patch.
func applyPatch[T any, P any](cur T, patch P) T {
	dst := reflect.ValueOf(&cur).Elem()
	src := reflect.ValueOf(patch)
	if src.Kind() != reflect.Struct || dst.Kind() != reflect.Struct {
		return cur
	}

	for i := 0; i < src.NumField(); i++ {
		field := src.Field(i)
		if field.Kind() != reflect.Pointer || field.IsNil() {
			continue
		}

		target := dst.FieldByName(src.Type().Field(i).Name)
		if !target.IsValid() || !target.CanSet() {
			continue
		}

		switch {
		case field.Elem().Type() == target.Type():
			target.Set(field.Elem())
		case field.Type() == target.Type():
			fresh := reflect.New(field.Elem().Type())
			fresh.Elem().Set(field.Elem())
			target.Set(fresh)
		}
	}

	return cur
}
