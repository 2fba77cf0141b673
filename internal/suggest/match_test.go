// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package suggest

import (
	"reflect"
	"testing"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain ascii", "Santos", "SANTOS"},
		{"diacritics stripped", "São Paulo", "SAO PAULO"},
		{"already upper", "SOROCABA", "SOROCABA"},
		{"mixed accents", "Brasília", "BRASILIA"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fold(tt.input); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWordStarts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single word", "SANTOS", []string{"SANTOS"}},
		{"two words", "SAO PAULO", []string{"SAO PAULO", "PAULO"}},
		{"three words", "RIO DE JANEIRO", []string{"RIO DE JANEIRO", "DE JANEIRO", "JANEIRO"}},
		{"empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wordStarts(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wordStarts(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
