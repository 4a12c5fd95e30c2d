package snake

import (
	"errors"
	"testing"
)

func TestFromMap(t *testing.T) {
	def := DefaultConfig()
	cases := []struct {
		name string
		in   map[string]string
		want Config
	}{
		{"nil", nil, def},
		{"overrides", map[string]string{"w": "20", "h": "11", "seed": "-4"}, Config{Width: 20, Height: 11, Seed: -4}},
		{"garbage ignored", map[string]string{"w": "wide", "h": "0", "seed": "x"}, def},
		{"negative ignored", map[string]string{"w": "-3"}, def},
	}
	for _, tc := range cases {
		if got := FromMap(tc.in); got != tc.want {
			t.Fatalf("%s: FromMap = %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	bad := Config{Width: 3, Height: 0}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("Validate() = %v, want ErrInvalidDimensions", err)
	}
}
