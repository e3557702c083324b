package domain

import (
	"fmt"
	"strings"
	"unicode"
)

type RoleID string
type UserID string
type PackKey string

// Mention formats the role the way chat clients render role references.
func (r RoleID) Mention() string {
	return "<@&" + string(r) + ">"
}

const (
	MaxButtonsPerRow  = 5
	MaxRowsPerMessage = 5
	MaxPackKeyLength  = 80

	// One row of the picker is reserved for the Done/Cancel controls.
	MaxIndividuals = (MaxRowsPerMessage - 1) * MaxButtonsPerRow
	// The main menu carries the pick-individually and remove-all buttons after the packs.
	MaxPacks = MaxRowsPerMessage*MaxButtonsPerRow - 2
)

type Pack struct {
	Key   PackKey
	Name  string
	Roles []RoleID
}

func (p Pack) Validate() error {
	key := string(p.Key)
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("key is required")
	}
	if len(key) > MaxPackKeyLength {
		return fmt.Errorf("key %q exceeds %d bytes", key, MaxPackKeyLength)
	}
	if strings.IndexFunc(key, unicode.IsSpace) >= 0 {
		return fmt.Errorf("key %q contains whitespace", key)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("pack %q: name is required", key)
	}
	if len(p.Roles) == 0 {
		return fmt.Errorf("pack %q: roles are required", key)
	}

	return nil
}

// NormalizeRoles trims, drops empty entries and deduplicates while keeping order.
func (p *Pack) NormalizeRoles() {
	if p == nil {
		return
	}

	p.Roles = uniqueRoles(p.Roles)
}

type IndividualOption struct {
	Index int
	Label string
	Role  RoleID
}

func (o IndividualOption) Validate() error {
	if strings.TrimSpace(o.Label) == "" {
		return fmt.Errorf("individual %d: label is required", o.Index)
	}
	if strings.TrimSpace(string(o.Role)) == "" {
		return fmt.Errorf("individual %d: role is required", o.Index)
	}

	return nil
}

// Catalog is built once at startup and never mutated afterwards, so a single
// *Catalog is shared by every interaction handler without locking.
type Catalog struct {
	packs       []Pack
	packIndex   map[PackKey]int
	individuals []IndividualOption
	style       Presentation
	managed     []RoleID
}

func NewCatalog(packs []Pack, individuals []IndividualOption, style Presentation) (*Catalog, error) {
	if len(packs) > MaxPacks {
		return nil, fmt.Errorf("%w: %d packs exceed the menu capacity of %d", ErrInvalidCatalog, len(packs), MaxPacks)
	}
	if len(individuals) > MaxIndividuals {
		return nil, fmt.Errorf("%w: %d individual options exceed the picker capacity of %d", ErrInvalidCatalog, len(individuals), MaxIndividuals)
	}

	catalog := &Catalog{
		packs:       make([]Pack, 0, len(packs)),
		packIndex:   make(map[PackKey]int, len(packs)),
		individuals: make([]IndividualOption, 0, len(individuals)),
		style:       Presentation{Buttons: style.Buttons.clone(), Text: style.Text},
	}

	for _, pack := range packs {
		pack.Key = PackKey(strings.TrimSpace(string(pack.Key)))
		pack.Name = strings.TrimSpace(pack.Name)
		pack.NormalizeRoles()
		if err := pack.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
		}
		if _, ok := catalog.packIndex[pack.Key]; ok {
			return nil, fmt.Errorf("%w: duplicate pack key %q", ErrInvalidCatalog, pack.Key)
		}

		catalog.packIndex[pack.Key] = len(catalog.packs)
		catalog.packs = append(catalog.packs, pack)
	}

	for i, option := range individuals {
		option.Index = i
		option.Label = strings.TrimSpace(option.Label)
		option.Role = RoleID(strings.TrimSpace(string(option.Role)))
		if err := option.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
		}

		catalog.individuals = append(catalog.individuals, option)
	}

	all := make([]RoleID, 0)
	for _, pack := range catalog.packs {
		all = append(all, pack.Roles...)
	}
	for _, option := range catalog.individuals {
		all = append(all, option.Role)
	}
	catalog.managed = uniqueRoles(all)

	return catalog, nil
}

func (c *Catalog) Pack(key PackKey) (Pack, error) {
	i, ok := c.packIndex[key]
	if !ok {
		return Pack{}, fmt.Errorf("%w: %q", ErrPackNotFound, key)
	}

	pack := c.packs[i]
	pack.Roles = append([]RoleID(nil), pack.Roles...)
	return pack, nil
}

func (c *Catalog) Individual(index int) (IndividualOption, error) {
	if index < 0 || index >= len(c.individuals) {
		return IndividualOption{}, fmt.Errorf("%w: %d", ErrIndividualNotFound, index)
	}

	return c.individuals[index], nil
}

func (c *Catalog) Packs() []Pack {
	packs := make([]Pack, 0, len(c.packs))
	for _, pack := range c.packs {
		pack.Roles = append([]RoleID(nil), pack.Roles...)
		packs = append(packs, pack)
	}

	return packs
}

func (c *Catalog) Individuals() []IndividualOption {
	return append([]IndividualOption(nil), c.individuals...)
}

// ManagedRoleIDs is the deduplicated union of every pack role and every
// individual role. Bulk removal always targets this whole set.
func (c *Catalog) ManagedRoleIDs() []RoleID {
	return append([]RoleID(nil), c.managed...)
}

func (c *Catalog) Presentation() Presentation {
	return Presentation{Buttons: c.style.Buttons.clone(), Text: c.style.Text}
}

func uniqueRoles(roles []RoleID) []RoleID {
	result := make([]RoleID, 0, len(roles))
	seen := make(map[RoleID]struct{}, len(roles))
	for _, role := range roles {
		trimmed := RoleID(strings.TrimSpace(string(role)))
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}

	return result
}
