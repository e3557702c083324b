package catalogfile

import (
	"fmt"

	"github.com/bnema/prefbot/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version     int                     `toml:"version" yaml:"version"`
	Menu        menuSchema              `toml:"menu" yaml:"menu"`
	Packs       []packSchema            `toml:"packs" yaml:"packs"`
	Individuals []individualSchema      `toml:"individuals" yaml:"individuals"`
	Buttons     map[string]buttonSchema `toml:"buttons" yaml:"buttons"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported catalog schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type menuSchema struct {
	Title            string `toml:"title" yaml:"title"`
	Description      string `toml:"description" yaml:"description"`
	PanelTitle       string `toml:"panel_title" yaml:"panel_title"`
	PanelDescription string `toml:"panel_description" yaml:"panel_description"`
	PickerPrompt     string `toml:"picker_prompt" yaml:"picker_prompt"`
}

type packSchema struct {
	Key   string   `toml:"key" yaml:"key"`
	Name  string   `toml:"name" yaml:"name"`
	Roles []string `toml:"roles" yaml:"roles"`
}

type individualSchema struct {
	Label string `toml:"label" yaml:"label"`
	Role  string `toml:"role" yaml:"role"`
}

type buttonSchema struct {
	Label string `toml:"label" yaml:"label"`
	Style string `toml:"style" yaml:"style"`
	Emoji string `toml:"emoji" yaml:"emoji"`
}

func (s fileSchema) toDomain() (*domain.Catalog, error) {
	packs := make([]domain.Pack, 0, len(s.Packs))
	for _, pack := range s.Packs {
		roles := make([]domain.RoleID, 0, len(pack.Roles))
		for _, role := range pack.Roles {
			roles = append(roles, domain.RoleID(role))
		}
		packs = append(packs, domain.Pack{Key: domain.PackKey(pack.Key), Name: pack.Name, Roles: roles})
	}

	individuals := make([]domain.IndividualOption, 0, len(s.Individuals))
	for i, individual := range s.Individuals {
		individuals = append(individuals, domain.IndividualOption{
			Index: i,
			Label: individual.Label,
			Role:  domain.RoleID(individual.Role),
		})
	}

	buttons := make(domain.ButtonTheme, len(s.Buttons))
	for key, button := range s.Buttons {
		style := domain.ButtonStyle(button.Style)
		if button.Style != "" && !style.Valid() {
			return nil, fmt.Errorf("%w: button %q: unsupported style %q", domain.ErrInvalidCatalog, key, button.Style)
		}
		buttons[key] = domain.ButtonAppearance{Label: button.Label, Style: style, Emoji: button.Emoji}
	}

	return domain.NewCatalog(packs, individuals, domain.Presentation{
		Buttons: buttons,
		Text: domain.MenuText{
			MenuTitle:        s.Menu.Title,
			MenuDescription:  s.Menu.Description,
			PanelTitle:       s.Menu.PanelTitle,
			PanelDescription: s.Menu.PanelDescription,
			PickerPrompt:     s.Menu.PickerPrompt,
		},
	})
}
