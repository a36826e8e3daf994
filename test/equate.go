// This file is part of Gopheradvance.
//
// Gopheradvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopheradvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopheradvance.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"reflect"
	"testing"
)

// Equate is used to test equality between one value and another. Generally,
// both values must be of the same kind, but any signed (or unsigned)
// integer type can be compared against any other signed (or unsigned)
// integer type, including a bare literal, which is always of type int. It
// is very convenient to write something like this, without having to cast
// the expected number value or the type a register or status field happens
// to be declared with:
//
//	var m cpu.Mode
//	m = someFunction()
//	test.Equate(t, m, cpu.ModeSupervisor)
//	test.Equate(t, someRegister, 10)
//
// This is by no means a comprehensive comparison function. As it is
// however, it's good enough.
func Equate(t *testing.T, value, expectedValue interface{}) {
	t.Helper()

	if value == nil {
		if expectedValue != nil {
			t.Errorf("equation of type <nil> failed (<nil> - wanted %v)", expectedValue)
		}
		return
	}

	v := reflect.ValueOf(value)
	ev := reflect.ValueOf(expectedValue)

	switch v.Kind() {
	case reflect.Bool:
		if ev.Kind() != reflect.Bool {
			t.Fatalf("values for Equate() are not the same type (%T and %T)", value, expectedValue)
			return
		}
		if v.Bool() != ev.Bool() {
			t.Errorf("equation of type %T failed (%v  - wanted %v)", value, value, expectedValue)
		}

	case reflect.String:
		if ev.Kind() != reflect.String {
			t.Fatalf("values for Equate() are not the same type (%T and %T)", value, expectedValue)
			return
		}
		if v.String() != ev.String() {
			t.Errorf("equation of type %T failed (%s  - wanted %s)", value, value, expectedValue)
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if !isSignedInt(ev.Kind()) {
			t.Fatalf("values for Equate() are not the same compatible (%T and %T)", value, expectedValue)
			return
		}
		if v.Int() != ev.Int() {
			t.Errorf("equation of type %T failed (%d  - wanted %d)", value, value, expectedValue)
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		switch {
		case isSignedInt(ev.Kind()):
			if v.Uint() != uint64(ev.Int()) {
				t.Errorf("equation of type %T failed (%#x  - wanted %#x)", value, value, expectedValue)
			}
		case isUnsignedInt(ev.Kind()):
			if v.Uint() != ev.Uint() {
				t.Errorf("equation of type %T failed (%#x  - wanted %#x)", value, value, expectedValue)
			}
		default:
			t.Fatalf("values for Equate() are not the same compatible (%T and %T)", value, expectedValue)
		}

	default:
		t.Fatalf("unhandled type for Equate() function (%T)", value)
	}
}

func isSignedInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsignedInt(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}
