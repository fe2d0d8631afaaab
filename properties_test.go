package tabwalk_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabwalk/tabwalk"
)

func TestDefaultProperties(t *testing.T) {
	t.Parallel()
	p := tabwalk.DefaultProperties()
	assert.True(t, p.ShowHeader)
	assert.False(t, p.EmptyListShowTable)
	assert.False(t, p.ExportFullList)
	assert.Equal(t, "Nothing found to display.", p.EmptyListMessage)
	assert.Contains(t, p.EmptyListRowMessage, "%d")
	assert.Equal(t, "en", p.Locale)
}

func TestLoadProperties(t *testing.T) {
	t.Parallel()
	in := strings.NewReader(strings.Join([]string{
		"show_header: false",
		"empty_list_show_table: true",
		"empty_list_message: nada",
		"locale: de",
	}, "\n"))

	p, err := tabwalk.LoadProperties(in)
	require.NoError(t, err)
	assert.False(t, p.ShowHeader)
	assert.True(t, p.EmptyListShowTable)
	assert.Equal(t, "nada", p.EmptyListMessage)
	assert.Equal(t, "de", p.Locale)
	// Absent fields keep their defaults.
	assert.Equal(t, "Nothing found to display. Spanning %d columns.", p.EmptyListRowMessage)
}

func TestLoadPropertiesEmpty(t *testing.T) {
	t.Parallel()
	p, err := tabwalk.LoadProperties(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, tabwalk.DefaultProperties(), p)
}

func TestLoadPropertiesInvalid(t *testing.T) {
	t.Parallel()
	_, err := tabwalk.LoadProperties(strings.NewReader("show_header: [unclosed"))
	require.Error(t, err)
}
