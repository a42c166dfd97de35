package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"shortener/pkg/domain"
)

func TestField_JSONPresence(t *testing.T) {
	var edit domain.ShortURLEdit
	require.NoError(t, json.Unmarshal([]byte(`{
		"longUrl": "https://example.org",
		"maxVisits": null,
		"crawlable": true
	}`), &edit))

	// supplied with value
	v, ok := edit.LongURL.Get()
	require.True(t, ok)
	require.Equal(t, "https://example.org", *v)

	// supplied as an explicit null (a clear)
	mv, ok := edit.MaxVisits.Get()
	require.True(t, ok)
	require.Nil(t, mv)

	c, ok := edit.Crawlable.Get()
	require.True(t, ok)
	require.True(t, c)

	// absent keys stay absent
	require.False(t, edit.ValidSince.Present())
	require.False(t, edit.Tags.Present())
	require.False(t, edit.Title.Present())
	require.False(t, edit.ForwardQuery.Present())
}

func TestField_ZeroValueIsAbsent(t *testing.T) {
	var f domain.Field[*string]
	require.False(t, f.Present())

	_, ok := f.Get()
	require.False(t, ok)
	require.Nil(t, f.Value())
}
