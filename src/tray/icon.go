package tray

import "fyne.io/fyne/v2"

// SVG content for the tray icon
const svgContent = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16" width="16" height="16">
  <circle cx="8" cy="8" r="6" fill="none" stroke="#0078d4" stroke-width="1" opacity="0.6"/>
  <line x1="8" y1="1" x2="8" y2="6" stroke="#333333" stroke-width="1.5"/>
  <line x1="8" y1="10" x2="8" y2="15" stroke="#333333" stroke-width="1.5"/>
  <line x1="1" y1="8" x2="6" y2="8" stroke="#333333" stroke-width="1.5"/>
  <line x1="10" y1="8" x2="15" y2="8" stroke="#333333" stroke-width="1.5"/>
  <circle cx="8" cy="8" r="1" fill="#d40000"/>
</svg>`

// Icon is the crosshair glyph shown in the system tray and window title bars.
var Icon = fyne.NewStaticResource("crosshair.svg", []byte(svgContent))
