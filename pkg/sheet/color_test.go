package sheet

import (
	"image/color"
	"testing"

	"github.com/texpack/texpack/pkg/errors"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    color.Color
		wantErr bool
	}{
		{name: "empty means transparent", input: "", want: color.Transparent},
		{name: "transparent keyword", input: "transparent", want: color.Transparent},
		{name: "transparent case-insensitive", input: "Transparent", want: color.Transparent},
		{name: "rgb", input: "#ff8000", want: color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}},
		{name: "rgba", input: "#ff800080", want: color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0x80}},
		{name: "no hash", input: "336699", want: color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff}},
		{name: "too short", input: "#fff", wantErr: true},
		{name: "not hex", input: "#zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if code := errors.GetCode(err); code != errors.ErrCodeInvalidConfig {
					t.Errorf("code = %v, want %v", code, errors.ErrCodeInvalidConfig)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatColor(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  string
	}{
		{name: "nil", input: nil, want: "transparent"},
		{name: "transparent", input: color.Transparent, want: "transparent"},
		{name: "opaque", input: color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, want: "#ff8000"},
		{name: "with alpha", input: color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}, want: "#11223344"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatColor(tt.input); got != tt.want {
				t.Errorf("FormatColor = %q, want %q", got, tt.want)
			}
		})
	}
}
