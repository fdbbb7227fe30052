package clickhouse

import (
	"fmt"
	"reflect"

	"github.com/golang/mock/gomock"
)

// rowsOf returns a MockRows that yields data one row per Next, copying each
// value into the matching Scan destination.
func rowsOf(ctrl *gomock.Controller, data ...[]any) *MockRows {
	rows := NewMockRows(ctrl)
	cursor := -1

	rows.EXPECT().Next().DoAndReturn(func() bool {
		cursor++
		return cursor < len(data)
	}).AnyTimes()
	rows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
		return assign(dest, data[cursor])
	}).AnyTimes()
	rows.EXPECT().Err().Return(nil).AnyTimes()
	rows.EXPECT().Close().Return(nil)
	return rows
}

func assign(dest []any, values []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("scan into %d destinations, row has %d values", len(dest), len(values))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		value := reflect.ValueOf(values[i])
		if value.Type() != target.Type() && value.Kind() == reflect.Pointer && value.Type().Elem() == target.Type() {
			value = value.Elem()
		}
		if !value.Type().AssignableTo(target.Type()) {
			return fmt.Errorf("column %d: cannot scan %s into %s", i, value.Type(), target.Type())
		}
		target.Set(value)
	}
	return nil
}
