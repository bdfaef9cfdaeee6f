package theme

import "github.com/umputun/themeswitch/app/enum"

// label message ids, resolved to text by a Localizer
const (
	MsgSwitchToLight = "SwitchToLight"
	MsgSwitchToDark  = "SwitchToDark"
)

// DisplayState is everything the page shows for a theme.
type DisplayState struct {
	Attribute string `json:"attribute"` // value of the root data-theme attribute
	Icon      string `json:"icon"`      // icon class of the toggle
	LabelID   string `json:"-"`         // message id of the label
	Label     string `json:"label"`     // default (english) label, names the target of the next toggle
	Class     string `json:"class"`     // the one style class of the toggle for this theme
}

// Display maps a theme to its display state.
func Display(t enum.Theme) DisplayState {
	if t == enum.ThemeDark {
		return DisplayState{
			Attribute: enum.ThemeDark.String(),
			Icon:      "bi bi-sun",
			LabelID:   MsgSwitchToLight,
			Label:     "switch to light",
			Class:     "btn-outline-warning",
		}
	}
	return DisplayState{
		Attribute: enum.ThemeLight.String(),
		Icon:      "bi bi-moon",
		LabelID:   MsgSwitchToDark,
		Label:     "switch to dark",
		Class:     "btn-outline-light",
	}
}
