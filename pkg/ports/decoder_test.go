package ports

import "testing"

func TestParseColorComponents(t *testing.T) {
	tests := []struct {
		input   string
		want    ColorComponents
		wantErr bool
	}{
		{"", Default, false},
		{"default", Default, false},
		{"grey", Grey, false},
		{"Gray", Grey, false},
		{"grey-alpha", GreyAlpha, false},
		{"rgb", RedGreenBlue, false},
		{"RGBA", RedGreenBlueAlpha, false},
		{"4", RedGreenBlueAlpha, false},
		{"cmyk", Default, true},
	}

	for _, tt := range tests {
		got, err := ParseColorComponents(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColorComponents(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColorComponents(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestColorComponents_Valid(t *testing.T) {
	for c := Default; c <= RedGreenBlueAlpha; c++ {
		if !c.Valid() {
			t.Errorf("%v should be valid", c)
		}
	}
	if ColorComponents(5).Valid() || ColorComponents(-1).Valid() {
		t.Error("out-of-range requests should be invalid")
	}
}

func TestImage_ToNRGBA(t *testing.T) {
	tests := []struct {
		name string
		img  Image
		want []byte
	}{
		{"grey", Image{Width: 1, Height: 1, Comp: Grey, Data: []byte{9}}, []byte{9, 9, 9, 255}},
		{"grey alpha", Image{Width: 1, Height: 1, Comp: GreyAlpha, Data: []byte{9, 7}}, []byte{9, 9, 9, 7}},
		{"rgb", Image{Width: 1, Height: 1, Comp: RedGreenBlue, Data: []byte{1, 2, 3}}, []byte{1, 2, 3, 255}},
		{"rgba", Image{Width: 1, Height: 1, Comp: RedGreenBlueAlpha, Data: []byte{1, 2, 3, 4}}, []byte{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		got := tt.img.ToNRGBA().Pix
		if string(got) != string(tt.want) {
			t.Errorf("%s: ToNRGBA() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	if ParseLogLevel("debug") != LevelDebug || ParseLogLevel("quiet") != LevelQuiet {
		t.Error("known levels should parse")
	}
	if ParseLogLevel("verbose") != LevelInfo {
		t.Error("unknown levels should fall back to info")
	}
}
