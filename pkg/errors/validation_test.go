package errors

import (
	"strings"
	"testing"
)

func TestValidateTextureName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "hero.png", wantErr: false},
		{name: "nested path", input: "units/archer/idle.png", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "traversal", input: "../secrets.png", wantErr: true},
		{name: "control character", input: "bad\x00name.png", wantErr: true},
		{name: "too long", input: strings.Repeat("a", 257), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTextureName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTextureName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidPath {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateOutputPrefix(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "atlas", wantErr: false},
		{name: "with dash", input: "my-sheet_v2", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "slash", input: "out/atlas", wantErr: true},
		{name: "backslash", input: `out\atlas`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPrefix(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPrefix(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
