package crosshair

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// fileFormat mirrors the saved settings document. Pointer fields let Decode
// tell a missing key from a zero value.
type fileFormat struct {
	LineThickness    *int    `json:"line_thickness"`
	LineLength       *int    `json:"line_length"`
	GapSize          *int    `json:"gap_size"`
	MiddleDotEnabled *bool   `json:"middle_dot_enabled"`
	MiddleDotSize    *int    `json:"middle_dot_size"`
	CrosshairColor   *string `json:"crosshair_color"`
}

// Encode serializes every persisted field of cfg.
func Encode(cfg Config) ([]byte, error) {
	cfg = cfg.Clamped()
	hex := FormatHex(cfg.Color)
	doc := fileFormat{
		LineThickness:    &cfg.LineThickness,
		LineLength:       &cfg.LineLength,
		GapSize:          &cfg.GapSize,
		MiddleDotEnabled: &cfg.MiddleDotEnabled,
		MiddleDotSize:    &cfg.MiddleDotSize,
		CrosshairColor:   &hex,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses a settings document. Missing keys keep their defaults and
// out-of-range numbers are clamped; an unreadable color is an error.
func Decode(data []byte) (Config, error) {
	var doc fileFormat
	if err := json.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("decode settings: %w", err)
	}

	cfg := Default()
	if doc.LineThickness != nil {
		cfg.LineThickness = *doc.LineThickness
	}
	if doc.LineLength != nil {
		cfg.LineLength = *doc.LineLength
	}
	if doc.GapSize != nil {
		cfg.GapSize = *doc.GapSize
	}
	if doc.MiddleDotEnabled != nil {
		cfg.MiddleDotEnabled = *doc.MiddleDotEnabled
	}
	if doc.MiddleDotSize != nil {
		cfg.MiddleDotSize = *doc.MiddleDotSize
	}
	if doc.CrosshairColor != nil {
		c, err := ParseHex(*doc.CrosshairColor)
		if err != nil {
			return Config{}, fmt.Errorf("decode settings: crosshair_color: %w", err)
		}
		cfg.Color = c
	}
	return cfg.Clamped(), nil
}

// Write encodes cfg fully before issuing a single write to w.
func Write(w io.Writer, cfg Config) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// Read decodes a settings document from r.
func Read(r io.Reader) (Config, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return Config{}, fmt.Errorf("read settings: %w", err)
	}
	return Decode(buf.Bytes())
}

// LoadFile reads a settings document from disk.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read settings file %s: %w", path, err)
	}
	return Decode(data)
}

// FormatHex renders c as lowercase #rrggbb, ignoring alpha.
func FormatHex(c color.Color) string {
	cf, _ := colorful.MakeColor(Opaque(c))
	return cf.Hex()
}

// ParseHex accepts #rrggbb or #rgb, with or without the leading '#'.
func ParseHex(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := cf.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
