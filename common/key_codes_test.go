package common

import "testing"

func TestKeyCodesMatchGLFW(t *testing.T) {
	// GLFW uses ASCII values for printable keys and 256 for escape.
	cases := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"L", KeyL, 'L'},
		{"S", KeyS, 'S'},
		{"D", KeyD, 'D'},
		{"Esc", KeyEsc, 256},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("Key%s = %d, want %d", tc.name, tc.got, tc.want)
		}
	}
}
