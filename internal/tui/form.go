package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"minerctl/internal/catalog"
	"minerctl/internal/settings"
)

// field is one live input bound to a catalog option. Exactly one of the
// kind-specific members is meaningful, selected by opt.Kind.
type field struct {
	opt     catalog.Option
	input   textinput.Model // KindText
	checked bool            // KindCheckbox
	choice  int             // KindDropdown, index into opt.Choices
}

// displayValue returns the field's current value as text.
func (f *field) displayValue() string {
	switch f.opt.Kind {
	case catalog.KindText:
		return f.input.Value()
	case catalog.KindCheckbox:
		if f.checked {
			return "1"
		}
		return "0"
	case catalog.KindDropdown:
		return f.opt.Choices[f.choice]
	default:
		return ""
	}
}

type formGroup struct {
	name   string
	title  string
	fields []*field
}

// form is the live input registry: one field per catalog option in table
// order, addressable by option key and grouped by tab. Built once at startup
// and kept for the lifetime of the program.
type form struct {
	groups []formGroup
	byKey  map[string]*field
}

func newForm(groups []catalog.Group) *form {
	f := &form{byKey: make(map[string]*field)}
	for _, g := range groups {
		fg := formGroup{name: g.Name, title: g.Title}
		for _, opt := range g.Options {
			fld := &field{opt: opt}
			switch opt.Kind {
			case catalog.KindText:
				ti := textinput.New()
				ti.Prompt = ""
				ti.CharLimit = 256
				ti.Width = 44
				ti.SetValue(opt.Default)
				fld.input = ti
			case catalog.KindCheckbox:
				// Always unchecked on a fresh form; catalog defaults are
				// informational for text options only.
				fld.checked = false
			case catalog.KindDropdown:
				fld.choice = 0
			}
			fg.fields = append(fg.fields, fld)
			f.byKey[opt.Key] = fld
		}
		f.groups = append(f.groups, fg)
	}
	return f
}

// fieldByKey looks up a live input by its option key.
func (f *form) fieldByKey(key string) (*field, bool) {
	fld, ok := f.byKey[key]
	return fld, ok
}

// capture snapshots the current input values into a settings document.
// Text and dropdown keys are omitted when their trimmed value is blank;
// checkbox keys are always present as 0 or 1.
func (f *form) capture() settings.Document {
	doc := settings.Document{}
	for _, g := range f.groups {
		for _, fld := range g.fields {
			switch fld.opt.Kind {
			case catalog.KindCheckbox:
				if fld.checked {
					doc[fld.opt.Key] = 1
				} else {
					doc[fld.opt.Key] = 0
				}
			case catalog.KindText, catalog.KindDropdown:
				v := fld.displayValue()
				if strings.TrimSpace(v) == "" {
					continue
				}
				doc[fld.opt.Key] = v
			}
		}
	}
	return doc
}

// apply pushes stored values back into the live inputs. Checkboxes coerce the
// stored value to a boolean, falling back to unchecked when it is absent or
// empty; text and dropdown fields keep their current display when the stored
// value is empty, and keys absent from the document are left untouched.
func (f *form) apply(doc settings.Document) {
	for _, g := range f.groups {
		for _, fld := range g.fields {
			switch fld.opt.Kind {
			case catalog.KindCheckbox:
				fld.checked = doc.Bool(fld.opt.Key)
			case catalog.KindText:
				if v := doc.String(fld.opt.Key); v != "" {
					fld.input.SetValue(v)
				}
			case catalog.KindDropdown:
				v := doc.String(fld.opt.Key)
				if v == "" {
					continue
				}
				for i, choice := range fld.opt.Choices {
					if choice == v {
						fld.choice = i
						break
					}
				}
			}
		}
	}
}

// cycleChoice advances a dropdown by delta, wrapping around the choice list.
func (f *field) cycleChoice(delta int) {
	n := len(f.opt.Choices)
	if f.opt.Kind != catalog.KindDropdown || n == 0 {
		return
	}
	f.choice = ((f.choice+delta)%n + n) % n
}
