package domain

import (
	"strconv"
	"strings"
)

// ActionKind is the closed set of transitions a button can request. Button
// identifiers embed both the kind and its parameter, so no server-side
// session is needed to know what a click means.
type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionOpenPreferences
	ActionSelectPack
	ActionPickIndividual
	ActionConfirmPack
	ActionSelectRole
	ActionCancel
	ActionDone
	ActionRemoveAll
)

func (k ActionKind) String() string {
	switch k {
	case ActionOpenPreferences:
		return "open_preferences"
	case ActionSelectPack:
		return "select_pack"
	case ActionPickIndividual:
		return "pick_individual"
	case ActionConfirmPack:
		return "confirm_pack"
	case ActionSelectRole:
		return "select_role"
	case ActionCancel:
		return "cancel"
	case ActionDone:
		return "done"
	case ActionRemoveAll:
		return "remove_all"
	default:
		return "unknown"
	}
}

const (
	actionIDOpenPreferences = "open_preferences"
	actionIDPickIndividual  = "pick_individual"
	actionIDCancel          = "cancel"
	actionIDDone            = "done"
	actionIDRemoveAll       = "remove_all"

	actionPrefixPack    = "pack_"
	actionPrefixConfirm = "confirm_"
	actionPrefixRole    = "role_"

	// Older panels carried per-grant remove buttons.
	legacyPrefixRemovePack = "remove_pack_"
	legacyPrefixRemoveRole = "remove_role_"
)

type Action struct {
	Kind  ActionKind
	Pack  PackKey
	Index int
}

func OpenPreferences() Action { return Action{Kind: ActionOpenPreferences} }
func SelectPack(key PackKey) Action { return Action{Kind: ActionSelectPack, Pack: key} }
func PickIndividual() Action { return Action{Kind: ActionPickIndividual} }
func ConfirmPack(key PackKey) Action { return Action{Kind: ActionConfirmPack, Pack: key} }
func SelectRole(index int) Action { return Action{Kind: ActionSelectRole, Index: index} }
func Cancel() Action { return Action{Kind: ActionCancel} }
func Done() Action { return Action{Kind: ActionDone} }
func RemoveAll() Action { return Action{Kind: ActionRemoveAll} }

// ID encodes the action as a button identifier. ParseAction(a.ID()) == a for
// every known action.
func (a Action) ID() string {
	switch a.Kind {
	case ActionOpenPreferences:
		return actionIDOpenPreferences
	case ActionSelectPack:
		return actionPrefixPack + string(a.Pack)
	case ActionPickIndividual:
		return actionIDPickIndividual
	case ActionConfirmPack:
		return actionPrefixConfirm + string(a.Pack)
	case ActionSelectRole:
		return actionPrefixRole + strconv.Itoa(a.Index)
	case ActionCancel:
		return actionIDCancel
	case ActionDone:
		return actionIDDone
	case ActionRemoveAll:
		return actionIDRemoveAll
	default:
		return ""
	}
}

// ParseAction decodes a button identifier. Anything it does not recognise
// yields ActionUnknown.
func ParseAction(id string) Action {
	switch id {
	case actionIDOpenPreferences:
		return OpenPreferences()
	case actionIDPickIndividual:
		return PickIndividual()
	case actionIDCancel:
		return Cancel()
	case actionIDDone:
		return Done()
	case actionIDRemoveAll:
		return RemoveAll()
	}

	switch {
	case strings.HasPrefix(id, legacyPrefixRemovePack), strings.HasPrefix(id, legacyPrefixRemoveRole):
		return RemoveAll()
	case strings.HasPrefix(id, actionPrefixPack):
		if key := strings.TrimPrefix(id, actionPrefixPack); key != "" {
			return SelectPack(PackKey(key))
		}
	case strings.HasPrefix(id, actionPrefixConfirm):
		if key := strings.TrimPrefix(id, actionPrefixConfirm); key != "" {
			return ConfirmPack(PackKey(key))
		}
	case strings.HasPrefix(id, actionPrefixRole):
		raw := strings.TrimPrefix(id, actionPrefixRole)
		index, err := strconv.Atoi(raw)
		if err == nil && index >= 0 && strconv.Itoa(index) == raw {
			return SelectRole(index)
		}
	}

	return Action{Kind: ActionUnknown}
}
