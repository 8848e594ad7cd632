package crosshair

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestEncodeUsesFileKeys(t *testing.T) {
	cfg := Config{
		Color:            color.RGBA{R: 0xff, G: 0x80, B: 0x0a, A: 255},
		LineThickness:    3,
		LineLength:       10,
		GapSize:          5,
		MiddleDotEnabled: true,
		MiddleDotSize:    4,
	}
	data, err := Encode(cfg)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Encoded document is not JSON: %v", err)
	}
	want := map[string]any{
		"line_thickness":     float64(3),
		"line_length":        float64(10),
		"gap_size":           float64(5),
		"middle_dot_enabled": true,
		"middle_dot_size":    float64(4),
		"crosshair_color":    "#ff800a",
	}
	if len(doc) != len(want) {
		t.Fatalf("Expected %d keys, got %d: %v", len(want), len(doc), doc)
	}
	for k, v := range want {
		if doc[k] != v {
			t.Errorf("Key %s: expected %v, got %v", k, v, doc[k])
		}
	}
}

func TestRoundTrip(t *testing.T) {
	colors := []color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
		{R: 1, G: 128, B: 254, A: 255},
		{R: 200, G: 17, B: 99, A: 255},
	}
	for _, c := range colors {
		for thickness := MinLineThickness; thickness <= MaxLineThickness; thickness += 4 {
			for length := MinLineLength; length <= MaxLineLength; length += 67 {
				for _, dot := range []bool{false, true} {
					cfg := Config{
						Color:            c,
						LineThickness:    thickness,
						LineLength:       length,
						GapSize:          length % (MaxGapSize + 1),
						MiddleDotEnabled: dot,
						MiddleDotSize:    MinMiddleDotSize + length%MaxMiddleDotSize,
					}
					data, err := Encode(cfg)
					if err != nil {
						t.Fatalf("Encode failed: %v", err)
					}
					got, err := Decode(data)
					if err != nil {
						t.Fatalf("Decode failed: %v", err)
					}
					if got != cfg {
						t.Fatalf("Round trip mismatch:\n  in:  %+v\n  out: %+v", cfg, got)
					}
				}
			}
		}
	}
}

func TestDecodeMissingKeysKeepDefaults(t *testing.T) {
	cfg, err := Decode([]byte(`{"line_length": 40}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	want := Default()
	want.LineLength = 40
	if cfg != want {
		t.Errorf("Expected %+v, got %+v", want, cfg)
	}
}

func TestDecodeClampsOutOfRange(t *testing.T) {
	cfg, err := Decode([]byte(`{"line_thickness": 40, "line_length": 250, "gap_size": -1, "middle_dot_size": 0}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if cfg.LineThickness != 10 || cfg.LineLength != 200 || cfg.GapSize != 0 || cfg.MiddleDotSize != 1 {
		t.Errorf("Expected clamped values, got %+v", cfg)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "not json", in: `line_length=3`},
		{name: "bad color", in: `{"crosshair_color": "#zzzzzz"}`},
		{name: "short color", in: `{"crosshair_color": "#12345"}`},
		{name: "wrong type", in: `{"middle_dot_enabled": "yes"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.in)); err == nil {
				t.Fatalf("Expected error for %q", tt.in)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{in: "#ffffff", want: color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{in: "00FF7f", want: color.RGBA{R: 0, G: 255, B: 127, A: 255}},
		{in: " #f00 ", want: color.RGBA{R: 255, G: 0, B: 0, A: 255}},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestFormatHexIgnoresAlpha(t *testing.T) {
	if got := FormatHex(color.NRGBA{R: 0x12, G: 0xab, B: 0x00, A: 0x80}); got != "#12ab00" {
		t.Errorf("Expected #12ab00, got %s", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteAndRead(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.GapSize = 12
	if err := Write(&buf, cfg); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got != cfg {
		t.Errorf("Expected %+v, got %+v", cfg, got)
	}

	if err := Write(failingWriter{}, cfg); err == nil {
		t.Error("Expected write error to surface")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crosshair.json")
	cfg := Default()
	cfg.MiddleDotEnabled = false
	data, err := Encode(cfg)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if got != cfg {
		t.Errorf("Expected %+v, got %+v", cfg, got)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}
