package colortoken_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailtheme/pkg/colortoken"
)

var purposes = []colortoken.Purpose{
	colortoken.PurposeText,
	colortoken.PurposeBackground,
	colortoken.PurposeAll,
}

func TestGetColorGroups_MostUsedIsWhiteAndBlack(t *testing.T) {
	t.Parallel()

	for _, p := range purposes {
		groups := colortoken.GetColorGroups(p)
		require.NotEmpty(t, groups)
		assert.Equal(t, colortoken.GroupMostUsed, groups[0].Name)

		ids := make([]string, 0, len(groups[0].Tokens))
		for _, tok := range groups[0].Tokens {
			ids = append(ids, tok.ID)
		}
		assert.Equal(t, []string{"white", "black"}, ids, "purpose %s", p)
	}
}

func TestGetColorGroups_NoCrossGroupDuplicates(t *testing.T) {
	t.Parallel()

	for _, p := range purposes {
		seen := make(map[string]string)
		for _, g := range colortoken.GetColorGroups(p) {
			for _, tok := range g.Tokens {
				prev, dup := seen[tok.ID]
				assert.False(t, dup, "purpose %s: %q in both %q and %q", p, tok.ID, prev, g.Name)
				seen[tok.ID] = g.Name
			}
		}
	}
}

func TestGetColorGroups_Order(t *testing.T) {
	t.Parallel()

	groups := colortoken.GetColorGroups(colortoken.PurposeAll)
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"Most Used", "Brand", "Grays", "Semantic"}, names)
}

func TestGetColorGroups_FilteredByPurpose(t *testing.T) {
	t.Parallel()

	for _, g := range colortoken.GetColorGroups(colortoken.PurposeText)[1:] {
		for _, tok := range g.Tokens {
			assert.True(t, tok.TextSafe, "%q is not text safe", tok.ID)
		}
	}
	for _, g := range colortoken.GetColorGroups(colortoken.PurposeBackground)[1:] {
		for _, tok := range g.Tokens {
			assert.True(t, tok.BackgroundSafe, "%q is not background safe", tok.ID)
		}
	}

	all := 0
	for _, g := range colortoken.GetColorGroups(colortoken.PurposeAll) {
		all += len(g.Tokens)
	}
	assert.Equal(t, len(colortoken.Tokens()), all)
}

func TestParsePurpose(t *testing.T) {
	t.Parallel()

	p, err := colortoken.ParsePurpose("")
	require.NoError(t, err)
	assert.Equal(t, colortoken.PurposeAll, p)

	p, err = colortoken.ParsePurpose("text")
	require.NoError(t, err)
	assert.Equal(t, colortoken.PurposeText, p)

	_, err = colortoken.ParsePurpose("border")
	assert.ErrorIs(t, err, colortoken.ErrInvalidPurpose)
}
