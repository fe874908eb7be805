package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupsAreValid(t *testing.T) {
	require.NoError(t, Validate(Groups()))
}

func TestGroupsOrderAndNames(t *testing.T) {
	groups := Groups()
	require.Len(t, groups, 6)

	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"network", "cpu", "api", "tls", "logging", "misc"}, names)
}

func TestDropdownDefaultsToFirstChoice(t *testing.T) {
	for _, g := range Groups() {
		for _, opt := range g.Options {
			if opt.Kind != KindDropdown {
				continue
			}
			assert.NotEmpty(t, opt.Choices, "dropdown %s must have choices", opt.Key)
			assert.Empty(t, opt.Default, "dropdown %s carries its default as Choices[0]", opt.Key)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		groups  []Group
		wantErr string
	}{
		{
			name: "duplicate keys across groups",
			groups: []Group{
				{Name: "a", Options: []Option{{Label: "X", Key: "dup", Kind: KindText}}},
				{Name: "b", Options: []Option{{Label: "Y", Key: "dup", Kind: KindText}}},
			},
			wantErr: "duplicate option key",
		},
		{
			name: "dropdown without choices",
			groups: []Group{
				{Name: "a", Options: []Option{{Label: "X", Key: "x", Kind: KindDropdown}}},
			},
			wantErr: "has no choices",
		},
		{
			name: "text option with choices",
			groups: []Group{
				{Name: "a", Options: []Option{{Label: "X", Key: "x", Kind: KindText, Choices: []string{"y"}}}},
			},
			wantErr: "non-dropdown option",
		},
		{
			name: "missing key",
			groups: []Group{
				{Name: "a", Options: []Option{{Label: "X", Kind: KindText}}},
			},
			wantErr: "has no key",
		},
		{
			name: "valid",
			groups: []Group{
				{Name: "a", Options: []Option{
					{Label: "X", Key: "x", Kind: KindText},
					{Label: "Y", Key: "y", Kind: KindCheckbox},
					{Label: "Z", Key: "z", Kind: KindDropdown, Choices: []string{"one"}},
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.groups)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
