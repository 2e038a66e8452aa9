// Package ui draws the examine overlay: description panels, the close
// button, name and inspect labels, the help prompt and the crosshair.
package ui

import (
	"examine3d/internal/examine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Options configure the overlay text that does not come from items.
type Options struct {
	// ShowHelp allows the help prompt to appear while examining.
	ShowHelp bool
	// InteractKey, RotateKey and DropKey name the inputs shown in prompts.
	InteractKey string
	RotateKey   string
	DropKey     string
	FontSize    float32
}

func DefaultOptions() Options {
	return Options{
		ShowHelp:    true,
		InteractKey: "E",
		RotateKey:   "LMB",
		DropKey:     "Q",
		FontSize:    24,
	}
}

type panel struct {
	shown       bool
	name        string
	description string
	nameStyle   examine.TextStyle
	descStyle   examine.TextStyle
}

// Overlay implements examine.Presenter. Presenter calls only record the
// desired state; Draw renders it once per frame.
type Overlay struct {
	opts  Options
	fonts *Fonts

	basic panel
	side  panel

	closeShown bool

	nameText        string
	nameShown       bool
	nameHighlighted bool

	helpShown bool

	inspectShown bool
	inspectPos   rl.Vector2
	inspectText  string

	crosshairVisible   bool
	crosshairHighlight bool

	// OnClose runs when the close button is clicked.
	OnClose func()

	// CursorLock captures or frees the mouse. Nil leaves the cursor alone.
	CursorLock func(locked bool)
}

func NewOverlay(opts Options, fonts *Fonts) *Overlay {
	o := &Overlay{
		opts:             opts,
		fonts:            fonts,
		crosshairVisible: true,
		CursorLock:       lockCursor,
	}
	o.basic.nameStyle, o.basic.descStyle = defaultStyles()
	o.side.nameStyle, o.side.descStyle = defaultStyles()
	return o
}

func defaultStyles() (name, desc examine.TextStyle) {
	cfg := examine.DefaultItemConfig()
	return cfg.NameStyle, cfg.DescriptionStyle
}

func lockCursor(locked bool) {
	if locked {
		rl.DisableCursor()
	} else {
		rl.EnableCursor()
	}
}

func (o *Overlay) ShowBasicPanel(name, description string, show bool) {
	o.basic.shown = show
	o.basic.name = name
	o.basic.description = description
}

func (o *Overlay) ShowSidePanel(name, description string, show bool) {
	o.side.shown = show
	o.side.name = name
	o.side.description = description
}

func (o *Overlay) SetPanelTextStyle(mode examine.UIMode, name, description examine.TextStyle) {
	switch mode {
	case examine.UIBasicPanel:
		o.basic.nameStyle, o.basic.descStyle = name, description
	case examine.UISidePanel:
		o.side.nameStyle, o.side.descStyle = name, description
	}
}

func (o *Overlay) ShowCloseAffordance(show bool) {
	o.closeShown = show
}

func (o *Overlay) SetNameHighlight(name string, show, highlighted bool) {
	o.nameText = name
	o.nameShown = show
	o.nameHighlighted = highlighted
}

// ShowHelpPrompt shows the help prompt if Options.ShowHelp allows it.
func (o *Overlay) ShowHelpPrompt(show bool) {
	o.helpShown = show && o.opts.ShowHelp
}

func (o *Overlay) SetInspectAnchor(show bool, screenPos rl.Vector2) {
	o.inspectShown = show
	o.inspectPos = screenPos
}

func (o *Overlay) SetInspectText(text string) {
	o.inspectText = text
}

func (o *Overlay) SetCrosshairHighlight(on bool) {
	o.crosshairHighlight = on
}

// SetCrosshairVisible shows the crosshair and captures the mouse, or hides
// it and frees the cursor for clicking on the examined item.
func (o *Overlay) SetCrosshairVisible(on bool) {
	if o.crosshairVisible == on {
		return
	}
	o.crosshairVisible = on
	if o.CursorLock != nil {
		o.CursorLock(on)
	}
}

// Close clicks the close button.
func (o *Overlay) Close() {
	if !o.closeShown || o.OnClose == nil {
		return
	}
	o.OnClose()
}

// NamePrompt is the label under the crosshair for the aimed-at item.
func (o *Overlay) NamePrompt() string {
	if !o.nameShown {
		return ""
	}
	if !o.nameHighlighted {
		return o.nameText
	}
	if o.nameText == "" {
		return "[" + o.opts.InteractKey + "] Examine"
	}
	return "[" + o.opts.InteractKey + "] Examine " + o.nameText
}

// HelpText is the prompt shown while examining.
func (o *Overlay) HelpText() string {
	return "Hold " + o.opts.RotateKey + " to rotate   Scroll to zoom   [" + o.opts.DropKey + "] Put back"
}

func (o *Overlay) CrosshairVisible() bool   { return o.crosshairVisible }
func (o *Overlay) CrosshairHighlight() bool { return o.crosshairHighlight }
func (o *Overlay) HelpShown() bool          { return o.helpShown }
func (o *Overlay) CloseShown() bool         { return o.closeShown }

// PanelShown reports whether the panel for mode is visible.
func (o *Overlay) PanelShown(mode examine.UIMode) bool {
	switch mode {
	case examine.UIBasicPanel:
		return o.basic.shown
	case examine.UISidePanel:
		return o.side.shown
	}
	return false
}

// Inspect reports the inspect label state.
func (o *Overlay) Inspect() (shown bool, pos rl.Vector2, text string) {
	return o.inspectShown, o.inspectPos, o.inspectText
}
