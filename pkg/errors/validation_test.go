package errors

import (
	"slices"
	"testing"
)

func TestValidateDay(t *testing.T) {
	tests := []struct {
		name    string
		day     uint32
		wantErr bool
	}{
		{"first", 1, false},
		{"middle", 13, false},
		{"last", 25, false},
		{"zero", 0, true},
		{"past calendar", 26, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDay(tt.day)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDay(%d) error = %v, wantErr %v", tt.day, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidDay) {
				t.Errorf("ValidateDay(%d) code = %v, want %v", tt.day, GetCode(err), ErrCodeInvalidDay)
			}
		})
	}
}

func TestValidateRepetitions(t *testing.T) {
	tests := []struct {
		n       int
		wantErr bool
	}{
		{1, false},
		{100, false},
		{0, true},
		{-3, true},
	}

	for _, tt := range tests {
		if err := ValidateRepetitions(tt.n); (err != nil) != tt.wantErr {
			t.Errorf("ValidateRepetitions(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
	}
}

func TestValidateDayRange(t *testing.T) {
	all := make([]uint32, 0, 25)
	for d := uint32(1); d <= 25; d++ {
		all = append(all, d)
	}

	tests := []struct {
		name    string
		expr    string
		want    []uint32
		wantErr bool
	}{
		{"empty selects all", "", all, false},
		{"single day", "3", []uint32{3}, false},
		{"range", "1-4", []uint32{1, 2, 3, 4}, false},
		{"mixed", "7-9, 1,4", []uint32{1, 4, 7, 8, 9}, false},
		{"duplicates", "2,2,1-2", []uint32{1, 2}, false},
		{"full range", "1-25", all, false},

		{"zero", "0", nil, true},
		{"past calendar", "20-26", nil, true},
		{"reversed", "9-3", nil, true},
		{"not a number", "x", nil, true},
		{"dangling dash", "3-", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateDayRange(tt.expr)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateDayRange(%q) error = %v, wantErr %v", tt.expr, err, tt.wantErr)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ValidateDayRange(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}
