package launcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minerctl/internal/catalog"
	"minerctl/internal/settings"
)

func testGroups() []catalog.Group {
	return []catalog.Group{
		{Name: "network", Options: []catalog.Option{
			{Label: "URL", Flag: "-o", Key: "url", Kind: catalog.KindText},
			{Label: "Keepalive", Flag: "-k", Key: "keepalive", Kind: catalog.KindCheckbox},
			{Label: "Algorithm", Flag: "-a", Key: "algo", Kind: catalog.KindDropdown, Choices: []string{"rx/0", "cn/0"}},
		}},
		{Name: "cpu", Options: []catalog.Option{
			{Label: "Threads", Flag: "-t", Key: "threads", Kind: catalog.KindText},
			{Label: "Disable CPU", Flag: "--no-cpu", Key: "no-cpu", Kind: catalog.KindCheckbox},
		}},
	}
}

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name string
		doc  settings.Document
		want []string
	}{
		{
			name: "empty document yields only the binary token",
			doc:  settings.Document{},
			want: []string{"./xmrig"},
		},
		{
			name: "checked checkbox becomes a bare switch",
			doc:  settings.Document{"keepalive": 1},
			want: []string{"./xmrig", "--keepalive"},
		},
		{
			name: "unchecked checkbox is omitted entirely",
			doc:  settings.Document{"keepalive": 0},
			want: []string{"./xmrig"},
		},
		{
			name: "non-empty values become key=value in catalog order",
			doc: settings.Document{
				"threads": "4",
				"url":     "stratum+tcp://pool:3333",
				"algo":    "rx/0",
			},
			want: []string{"./xmrig", "--url=stratum+tcp://pool:3333", "--algo=rx/0", "--threads=4"},
		},
		{
			name: "whitespace-only values are omitted",
			doc:  settings.Document{"url": "   ", "threads": "\t"},
			want: []string{"./xmrig"},
		},
		{
			name: "full mix",
			doc: settings.Document{
				"url":       "pool",
				"keepalive": 1,
				"algo":      "cn/0",
				"no-cpu":    0,
				"threads":   "8",
			},
			want: []string{"./xmrig", "--url=pool", "--keepalive", "--algo=cn/0", "--threads=8"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildArgs("./xmrig", testGroups(), tt.doc)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildArgsUsesKeyNotFlag(t *testing.T) {
	// The documented Flag token (-o, -t, ...) never appears; the option key is
	// the switch name on the assembled command line.
	got := BuildArgs("./xmrig", testGroups(), settings.Document{"url": "pool"})
	require.Len(t, got, 2)
	assert.Equal(t, "--url=pool", got[1])
	assert.NotContains(t, CommandLine(got), "-o=")
}

func TestCommandLine(t *testing.T) {
	args := []string{"./xmrig", "--url=pool", "--keepalive"}
	assert.Equal(t, "./xmrig --url=pool --keepalive", CommandLine(args))
}

func TestShellJoinQuoting(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want string
	}{
		{"plain tokens pass through", []string{"./xmrig", "--algo=rx/0"}, "./xmrig --algo=rx/0"},
		{"spaces are quoted", []string{"--pass=two words"}, "'--pass=two words'"},
		{"metacharacters are quoted", []string{"--pass=a;rm -rf /"}, "'--pass=a;rm -rf /'"},
		{"single quotes survive", []string{"--pass=it's"}, `'--pass=it'\''s'`},
		{"command substitution is inert", []string{"--pass=$(reboot)"}, "'--pass=$(reboot)'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shellJoin(tt.in))
		})
	}
}

func TestShellJoinNeverSplitsTokens(t *testing.T) {
	joined := shellJoin([]string{"--a=1 2", "--b=3"})
	// Quoted segments must still be separated by exactly one space.
	assert.Equal(t, 1, strings.Count(joined, "' --b"))
}
