// Package settings is the control window that edits the live crosshair.
// Every control writes straight through the overlay's setters; nothing is
// buffered or debounced.
package settings

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"crosshair-overlay/src/crosshair"
	"crosshair-overlay/src/overlay"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const (
	windowTitle     = "Crosshair Settings"
	defaultFileName = "crosshair.json"
	settingsFileExt = ".json"
	panelWidth      = 240
	panelMinHeight  = 420
)

type Options struct {
	// CopySettings puts the encoded settings on the clipboard. Nil hides the button.
	CopySettings func(crosshair.Config) error
}

type Panel struct {
	overlay *overlay.Overlay
	window  fyne.Window
	opts    Options

	thickness  *widget.Slider
	length     *widget.Slider
	gap        *widget.Slider
	dotEnabled *widget.Check
	dotSize    *widget.Slider
	visible    *widget.Check
	status     *widget.Label
}

// New builds the panel around ov, reading its current values once to seed the controls.
func New(app fyne.App, ov *overlay.Overlay, opts Options) *Panel {
	p := &Panel{
		overlay: ov,
		window:  app.NewWindow(windowTitle),
		opts:    opts,
	}
	p.window.SetContent(p.build())
	p.window.Resize(fyne.NewSize(panelWidth, panelMinHeight))
	p.window.SetFixedSize(true)

	// One-way: the overlay drives the checkbox, never the reverse.
	ov.OnVisibilityChanged(func(visible bool) {
		fyne.Do(func() { p.visible.SetChecked(visible) })
	})
	return p
}

func (p *Panel) Window() fyne.Window { return p.window }

// Show raises the panel, e.g. from the tray or a second launch.
func (p *Panel) Show() {
	p.window.Show()
	p.window.RequestFocus()
}

func (p *Panel) build() fyne.CanvasObject {
	cfg := p.overlay.Config()

	p.thickness = newIntSlider(crosshair.MinLineThickness, crosshair.MaxLineThickness, cfg.LineThickness, p.onThicknessChanged)
	p.length = newIntSlider(crosshair.MinLineLength, crosshair.MaxLineLength, cfg.LineLength, p.onLengthChanged)
	p.gap = newIntSlider(crosshair.MinGapSize, crosshair.MaxGapSize, cfg.GapSize, p.onGapChanged)
	p.dotSize = newIntSlider(crosshair.MinMiddleDotSize, crosshair.MaxMiddleDotSize, cfg.MiddleDotSize, p.onDotSizeChanged)

	p.dotEnabled = widget.NewCheck("Enable Middle Dot", nil)
	p.dotEnabled.Checked = cfg.MiddleDotEnabled
	p.dotEnabled.OnChanged = p.onDotToggled

	p.visible = widget.NewCheck("Crosshair visibility on right click", nil)
	p.visible.Checked = p.overlay.Visible()
	p.visible.Disable()

	p.status = widget.NewLabel("")
	p.status.Wrapping = fyne.TextWrapWord

	items := []fyne.CanvasObject{
		widget.NewLabel("Line Thickness"), p.thickness,
		widget.NewLabel("Line Length"), p.length,
		widget.NewLabel("Gap Size"), p.gap,
		p.dotEnabled,
		widget.NewLabel("Middle Dot Size"), p.dotSize,
		widget.NewButton("Pick Crosshair Color", p.showColorPicker),
		p.visible,
		widget.NewButton("Save Settings", p.showSaveDialog),
	}
	if p.opts.CopySettings != nil {
		items = append(items, widget.NewButton("Copy Settings", p.copySettings))
	}
	items = append(items, p.status)
	return container.NewVBox(items...)
}

func newIntSlider(min, max, value int, onChanged func(int)) *widget.Slider {
	s := widget.NewSlider(float64(min), float64(max))
	s.Step = 1
	s.Value = float64(value)
	s.OnChanged = func(v float64) { onChanged(int(math.Round(v))) }
	return s
}

func (p *Panel) onThicknessChanged(v int) { p.overlay.SetLineThickness(v) }
func (p *Panel) onLengthChanged(v int)    { p.overlay.SetLineLength(v) }
func (p *Panel) onGapChanged(v int)       { p.overlay.SetGapSize(v) }
func (p *Panel) onDotSizeChanged(v int)   { p.overlay.SetMiddleDotSize(v) }
func (p *Panel) onDotToggled(on bool)     { p.overlay.SetMiddleDotEnabled(on) }

// showColorPicker only calls back on confirm, so cancelling changes nothing.
func (p *Panel) showColorPicker() {
	picker := dialog.NewColorPicker("Crosshair Color", "Pick a crosshair color", p.applyColor, p.window)
	picker.Advanced = true
	picker.SetColor(p.overlay.Config().Color)
	picker.Show()
}

func (p *Panel) applyColor(c color.Color) {
	if c == nil {
		return
	}
	p.overlay.SetColor(c)
	p.setStatus("Color set to " + crosshair.FormatHex(c))
}

func (p *Panel) showSaveDialog() {
	d := dialog.NewFileSave(p.onSaveChosen, p.window)
	d.SetFileName(defaultFileName)
	d.SetFilter(storage.NewExtensionFileFilter([]string{settingsFileExt}))
	d.Show()
}

// onSaveChosen receives a nil writer when the user cancels the dialog.
func (p *Panel) onSaveChosen(writer fyne.URIWriteCloser, err error) {
	if err != nil {
		p.showError(fmt.Errorf("save settings: %w", err))
		return
	}
	if writer == nil {
		return
	}
	_ = p.saveTo(writer)
}

// saveTo writes the full current config and closes writer. On failure the
// target is removed where possible and the error is shown; success is only
// reported after the close succeeded.
func (p *Panel) saveTo(writer fyne.URIWriteCloser) error {
	uri := writer.URI()
	err := crosshair.Write(writer, p.overlay.Config())
	if cerr := writer.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close settings file: %w", cerr)
	}
	if err != nil {
		if derr := storage.Delete(uri); derr != nil {
			log.Printf("SETTINGS: could not remove partial file %s: %v", uri, derr)
		}
		p.setStatus("Save failed")
		p.showError(fmt.Errorf("save settings to %s: %w", uri.Name(), err))
		return err
	}

	log.Printf("SETTINGS: saved to %s", uri)
	p.setStatus("Settings saved to " + uri.Name())
	return nil
}

func (p *Panel) copySettings() {
	if err := p.opts.CopySettings(p.overlay.Config()); err != nil {
		p.showError(fmt.Errorf("copy settings: %w", err))
		return
	}
	p.setStatus("Settings copied to clipboard")
}

func (p *Panel) setStatus(text string) { p.status.SetText(text) }

func (p *Panel) showError(err error) {
	log.Printf("SETTINGS: %v", err)
	dialog.ShowError(err, p.window)
}
