package service_test

import (
	"testing"

	"github.com/campusgate/janus/internal/janus/service"
)

func TestNormalizeEnrollment(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"42", "42"},
		{"042", "42"},
		{"007", "7"},
		{"7", "7"},
		{"0", "0"},
		{"000", "0"},
		{"", "0"},
		{"  042  ", "42"},
		{"100", "100"}, // only leading zeros are stripped
		{"0A1", "A1"},
	}

	for _, c := range cases {
		if got := service.NormalizeEnrollment(c.in); got != c.want {
			t.Errorf("NormalizeEnrollment(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
