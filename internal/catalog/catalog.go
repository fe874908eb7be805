// Package catalog holds the static tables of xmrig command-line options that
// drive form generation, settings capture, and argument assembly.
package catalog

import "fmt"

// Kind discriminates how an option is edited and how its value is rendered
// on the command line.
type Kind int

const (
	// KindText is a free-form text entry.
	KindText Kind = iota
	// KindCheckbox is a boolean toggle emitted as a bare --key switch.
	KindCheckbox
	// KindDropdown is a single selection from a fixed list of choices.
	KindDropdown
)

// String makes Kind satisfy fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindCheckbox:
		return "checkbox"
	case KindDropdown:
		return "dropdown"
	default:
		return "unknown"
	}
}

// Option describes a single xmrig option.
//
// Key doubles as the settings-document key and as the switch name on the
// assembled command line. Flag records the switch xmrig documents for the
// option (often a short form like -o); it is informational only and never
// used to build arguments.
type Option struct {
	Label   string
	Flag    string
	Key     string
	Kind    Kind
	Default string   // text kind only; checkboxes always start unchecked
	Choices []string // dropdown kind only, first entry is the default
}

// Group is one tab of related options.
type Group struct {
	Name    string // internal identifier, e.g. "network"
	Title   string // tab title shown in the UI
	Options []Option
}

// Validate checks catalog invariants: keys unique across all groups, choices
// present exactly for dropdown options. A violation is a programming error in
// the tables, not a runtime condition.
func Validate(groups []Group) error {
	seen := make(map[string]string)
	for _, g := range groups {
		for _, opt := range g.Options {
			if opt.Key == "" {
				return fmt.Errorf("group %q: option %q has no key", g.Name, opt.Label)
			}
			if prev, ok := seen[opt.Key]; ok {
				return fmt.Errorf("duplicate option key %q in groups %q and %q", opt.Key, prev, g.Name)
			}
			seen[opt.Key] = g.Name

			if opt.Kind == KindDropdown && len(opt.Choices) == 0 {
				return fmt.Errorf("group %q: dropdown option %q has no choices", g.Name, opt.Key)
			}
			if opt.Kind != KindDropdown && len(opt.Choices) != 0 {
				return fmt.Errorf("group %q: non-dropdown option %q has choices", g.Name, opt.Key)
			}
		}
	}
	return nil
}
