package types

import "testing"

func TestCropTypeRoundTrip(t *testing.T) {
	tests := []struct {
		key  string
		want CropType
	}{
		{"carrot", CropCarrot},
		{"tomato", CropTomato},
		{"lettuce", CropLettuce},
		{"golden_beet", CropGoldenBeet},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			var got CropType
			if err := got.UnmarshalText([]byte(tt.key)); err != nil {
				t.Fatalf("UnmarshalText(%q) error: %v", tt.key, err)
			}
			if got != tt.want {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.key, got, tt.want)
			}
			if got.String() != tt.key {
				t.Errorf("String() = %q, want %q", got.String(), tt.key)
			}
		})
	}
}

func TestParseCropTypeUnknown(t *testing.T) {
	if _, err := ParseCropType("Golden Beet"); err == nil {
		t.Error("display names must not parse as identifiers")
	}
	if CropUnknown.String() != "unknown" {
		t.Errorf("CropUnknown.String() = %q", CropUnknown.String())
	}
}
