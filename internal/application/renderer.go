package application

import (
	"strings"

	"github.com/bnema/prefbot/internal/domain"
)

const (
	buttonKeyPickIndividual  = "pick_individual"
	buttonKeyRemoveAll       = "remove_all"
	buttonKeyConfirm         = "confirm"
	buttonKeyCancel          = "cancel"
	buttonKeyDone            = "done"
	buttonKeyIndividual      = "individual"
	buttonKeyRemove          = "remove"
	buttonKeyOpenPreferences = "open_preferences"
	buttonKeyPackPrefix      = "pack_"
)

var defaultMenuText = domain.MenuText{
	MenuTitle: "💬 Communication Preferences",
	MenuDescription: "These packs group roles for notifications, reminders and formatting.\n" +
		"Inspired by ADHD and autistic communication styles, but not a diagnosis!\n" +
		"Everyone is welcome to use them to chat in the way that works best.",
	PanelTitle:       "💌 Get Communication Preferences",
	PanelDescription: "Click below and I'll DM you the menu!",
	PickerPrompt:     "Select individual preferences:",
}

var defaultAppearances = map[string]domain.ButtonAppearance{
	buttonKeyPickIndividual:  {Label: "Pick individually", Style: domain.ButtonStyleSecondary, Emoji: "🎛️"},
	buttonKeyRemoveAll:       {Label: "Remove all", Style: domain.ButtonStyleDanger, Emoji: "🗑️"},
	buttonKeyConfirm:         {Label: "Confirm", Style: domain.ButtonStyleSuccess},
	buttonKeyCancel:          {Label: "Cancel", Style: domain.ButtonStyleSecondary},
	buttonKeyDone:            {Label: "Done", Style: domain.ButtonStyleSuccess},
	buttonKeyIndividual:      {Style: domain.ButtonStyleSecondary},
	buttonKeyRemove:          {Label: "Remove", Style: domain.ButtonStyleDanger},
	buttonKeyOpenPreferences: {Label: "Open preferences", Style: domain.ButtonStylePrimary, Emoji: "📬"},
}

// Renderer maps catalog data to display payloads. Every method is a pure
// function of the catalog and its arguments, so replaying an action renders
// the same message.
type Renderer struct {
	catalog *domain.Catalog
	buttons domain.ButtonTheme
	text    domain.MenuText
}

func NewRenderer(catalog *domain.Catalog) *Renderer {
	style := catalog.Presentation()

	return &Renderer{
		catalog: catalog,
		buttons: style.Buttons,
		text:    mergeMenuText(style.Text),
	}
}

func (r *Renderer) MainMenu() domain.Payload {
	packs := r.catalog.Packs()
	buttons := make([]domain.Button, 0, len(packs)+2)
	for _, pack := range packs {
		fallback := domain.ButtonAppearance{Label: pack.Name, Style: domain.ButtonStylePrimary}
		buttons = append(buttons, r.button(buttonKeyPackPrefix+string(pack.Key), fallback, domain.SelectPack(pack.Key)))
	}
	buttons = append(buttons,
		r.button(buttonKeyPickIndividual, defaultAppearances[buttonKeyPickIndividual], domain.PickIndividual()),
		r.button(buttonKeyRemoveAll, defaultAppearances[buttonKeyRemoveAll], domain.RemoveAll()),
	)

	return domain.Payload{
		Embed: &domain.Embed{Title: r.text.MenuTitle, Description: r.text.MenuDescription},
		Rows:  chunkButtons(buttons, domain.MaxButtonsPerRow),
	}
}

func (r *Renderer) PackDetail(pack domain.Pack) domain.Payload {
	mentions := make([]string, 0, len(pack.Roles))
	for _, role := range pack.Roles {
		mentions = append(mentions, role.Mention())
	}

	return domain.Payload{
		Embed: &domain.Embed{
			Title:       pack.Name,
			Description: "This pack will give you the following roles:\n" + strings.Join(mentions, "\n"),
		},
		Rows: []domain.Row{{
			r.button(buttonKeyConfirm, defaultAppearances[buttonKeyConfirm], domain.ConfirmPack(pack.Key)),
			r.button(buttonKeyCancel, defaultAppearances[buttonKeyCancel], domain.Cancel()),
		}},
	}
}

// IndividualPicker lays out one button per option, a new row every
// MaxButtonsPerRow options, then a trailing Done/Cancel row.
func (r *Renderer) IndividualPicker() domain.Payload {
	options := r.catalog.Individuals()
	buttons := make([]domain.Button, 0, len(options))
	for _, option := range options {
		appearance := r.buttons.Resolve(buttonKeyIndividual, defaultAppearances[buttonKeyIndividual])
		appearance.Label = option.Label
		buttons = append(buttons, domain.Button{
			ID:    domain.SelectRole(option.Index).ID(),
			Label: appearance.Label,
			Style: appearance.Style,
			Emoji: appearance.Emoji,
		})
	}

	rows := chunkButtons(buttons, domain.MaxButtonsPerRow)
	rows = append(rows, domain.Row{
		r.button(buttonKeyDone, defaultAppearances[buttonKeyDone], domain.Done()),
		r.button(buttonKeyCancel, defaultAppearances[buttonKeyCancel], domain.Cancel()),
	})

	return domain.Payload{Text: r.text.PickerPrompt, Rows: rows}
}

// Outcome is a terminal message: no embed and no buttons.
func (r *Renderer) Outcome(message string, ok bool) domain.Payload {
	if !ok {
		message = "❗ " + message
	}

	return domain.Payload{Text: message}
}

// Granted is a successful outcome that offers a single Remove button. The
// button removes the whole managed role set, not only what was just granted.
func (r *Renderer) Granted(message string) domain.Payload {
	payload := r.Outcome(message, true)
	payload.Rows = []domain.Row{{
		r.button(buttonKeyRemove, defaultAppearances[buttonKeyRemove], domain.RemoveAll()),
	}}

	return payload
}

func (r *Renderer) Panel() domain.Payload {
	return domain.Payload{
		Embed: &domain.Embed{Title: r.text.PanelTitle, Description: r.text.PanelDescription},
		Rows: []domain.Row{{
			r.button(buttonKeyOpenPreferences, defaultAppearances[buttonKeyOpenPreferences], domain.OpenPreferences()),
		}},
	}
}

func Notice(text string) domain.Payload {
	return domain.Payload{Text: text}
}

func (r *Renderer) button(themeKey string, fallback domain.ButtonAppearance, action domain.Action) domain.Button {
	appearance := r.buttons.Resolve(themeKey, fallback)
	if appearance.Label == "" && appearance.Emoji == "" {
		appearance.Label = action.Kind.String()
	}

	return domain.Button{
		ID:    action.ID(),
		Label: appearance.Label,
		Style: appearance.Style,
		Emoji: appearance.Emoji,
	}
}

func chunkButtons(buttons []domain.Button, size int) []domain.Row {
	if size <= 0 {
		size = domain.MaxButtonsPerRow
	}

	rows := make([]domain.Row, 0, (len(buttons)+size-1)/size)
	for start := 0; start < len(buttons); start += size {
		end := min(start+size, len(buttons))
		rows = append(rows, append(domain.Row(nil), buttons[start:end]...))
	}

	return rows
}

func mergeMenuText(text domain.MenuText) domain.MenuText {
	merged := defaultMenuText
	if text.MenuTitle != "" {
		merged.MenuTitle = text.MenuTitle
	}
	if text.MenuDescription != "" {
		merged.MenuDescription = text.MenuDescription
	}
	if text.PanelTitle != "" {
		merged.PanelTitle = text.PanelTitle
	}
	if text.PanelDescription != "" {
		merged.PanelDescription = text.PanelDescription
	}
	if text.PickerPrompt != "" {
		merged.PickerPrompt = text.PickerPrompt
	}

	return merged
}
