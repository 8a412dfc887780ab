package pkg

import "testing"

func TestMaskPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", ""},
		{"11", "(11"},
		{"119876", "(11) 9876"},
		{"1187654321", "(11) 8765-4321"},
		{"11987654321", "(11) 98765-4321"},
		{"11987654321999", "(11) 98765-4321"},
		{"(11) 98765-4321", "(11) 98765-4321"},
		{"11 9x8765y4321", "(11) 98765-4321"},
	}
	for _, tc := range cases {
		if got := MaskPhone(tc.in); got != tc.want {
			t.Fatalf("MaskPhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMaskDocument(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"123", "123"},
		{"123456", "123.456"},
		{"123456789", "123.456.789"},
		{"12345678901", "123.456.789-01"},
		{"123.456.789-01", "123.456.789-01"},
		{"12345678000101", "12.345.678/0001-01"},
		{"12.345.678/0001-01", "12.345.678/0001-01"},
		{"12345678000101999", "12.345.678/0001-01"},
	}
	for _, tc := range cases {
		if got := MaskDocument(tc.in); got != tc.want {
			t.Fatalf("MaskDocument(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
