package domain

type ButtonStyle string

const (
	ButtonStylePrimary   ButtonStyle = "primary"
	ButtonStyleSecondary ButtonStyle = "secondary"
	ButtonStyleSuccess   ButtonStyle = "success"
	ButtonStyleDanger    ButtonStyle = "danger"
)

func (s ButtonStyle) Valid() bool {
	switch s {
	case ButtonStylePrimary, ButtonStyleSecondary, ButtonStyleSuccess, ButtonStyleDanger:
		return true
	default:
		return false
	}
}

type Button struct {
	ID    string
	Label string
	Style ButtonStyle
	Emoji string
}

type Row []Button

type Embed struct {
	Title       string
	Description string
}

// Payload is a platform-neutral message: optional text, optional embed and
// button rows. A payload without rows clears any components it replaces.
type Payload struct {
	Text  string
	Embed *Embed
	Rows  []Row
}

func (p Payload) HasButtons() bool {
	for _, row := range p.Rows {
		if len(row) > 0 {
			return true
		}
	}

	return false
}

// ButtonAppearance is styling data only; it never changes which transition a
// button triggers.
type ButtonAppearance struct {
	Label string
	Style ButtonStyle
	Emoji string
}

// ButtonTheme is keyed by button kind: "pack_<key>", "pick_individual",
// "remove_all", "confirm", "cancel", "done", "individual", "remove",
// "open_preferences".
type ButtonTheme map[string]ButtonAppearance

// Resolve overlays the themed appearance for key on top of fallback.
func (t ButtonTheme) Resolve(key string, fallback ButtonAppearance) ButtonAppearance {
	themed, ok := t[key]
	if !ok {
		return fallback
	}

	if themed.Label != "" {
		fallback.Label = themed.Label
	}
	if themed.Style.Valid() {
		fallback.Style = themed.Style
	}
	if themed.Emoji != "" {
		fallback.Emoji = themed.Emoji
	}

	return fallback
}

func (t ButtonTheme) clone() ButtonTheme {
	cloned := make(ButtonTheme, len(t))
	for key, appearance := range t {
		cloned[key] = appearance
	}

	return cloned
}

type MenuText struct {
	MenuTitle        string
	MenuDescription  string
	PanelTitle       string
	PanelDescription string
	PickerPrompt     string
}

// Presentation groups the display-only parts of a catalog.
type Presentation struct {
	Buttons ButtonTheme
	Text    MenuText
}
