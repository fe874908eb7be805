package launcher

import (
	"strings"

	"minerctl/internal/catalog"
	"minerctl/internal/settings"
)

// BuildArgs assembles the miner invocation from the current settings document:
// the binary token first, then one token per non-empty option in catalog
// order. Checked checkboxes become bare --key switches; everything else with a
// non-blank value becomes --key=value.
//
// The switch name is always the option key; the catalog's Flag field is
// documentation only and never reaches the command line.
func BuildArgs(binary string, groups []catalog.Group, doc settings.Document) []string {
	args := []string{binary}
	for _, g := range groups {
		for _, opt := range g.Options {
			switch opt.Kind {
			case catalog.KindCheckbox:
				if doc.Bool(opt.Key) {
					args = append(args, "--"+opt.Key)
				}
			case catalog.KindText, catalog.KindDropdown:
				if v := strings.TrimSpace(doc.String(opt.Key)); v != "" {
					args = append(args, "--"+opt.Key+"="+v)
				}
			}
		}
	}
	return args
}

// CommandLine renders args as the display form of the command, suitable for
// the dry-run command and the clipboard.
func CommandLine(args []string) string {
	return strings.Join(args, " ")
}

// shellJoin quotes every token for safe interpolation into a bash -c string.
// Values containing spaces or shell metacharacters must not break the command
// apart or inject anything.
func shellJoin(args []string) string {
	quoted := make([]string, 0, len(args))
	for _, a := range args {
		quoted = append(quoted, shellQuote(a))
	}
	return strings.Join(quoted, " ")
}

func shellQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n\"'\\$`&|;<>(){}[]*?~#") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
