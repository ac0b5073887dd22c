package repositories

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaQueryDeduplicatesAggregates(t *testing.T) {
	sql, _, err := metaQuery().ToSql()
	require.NoError(t, err)

	// The likes and comments joins multiply rows, so both aggregates must
	// collapse duplicates: a post with 2 likes and 3 comments yields 6
	// joined rows but still exactly 2 liker ids and 3 comments.
	assert.Contains(t, sql, "array_agg(DISTINCT l.user_id)")
	assert.Contains(t, sql, "COUNT(DISTINCT c.id)")
}

func TestMetaQueryDefaultsLikesToEmptyArray(t *testing.T) {
	sql, _, err := metaQuery().ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "COALESCE(array_agg(DISTINCT l.user_id) FILTER (WHERE l.user_id IS NOT NULL), '{}')")
}

func searchPattern(search string) string {
	return "%" + likePatternEscaper.Replace(search) + "%"
}

func TestLikePatternEscapesMetacharacters(t *testing.T) {
	// A search term is a literal substring: "100%" must not match "100x"
	// and "a_c" must not match "abc".
	assert.Equal(t, `%100\%%`, searchPattern("100%"))
	assert.Equal(t, `%a\_c%`, searchPattern("a_c"))
	assert.Equal(t, `%back\\slash%`, searchPattern(`back\slash`))
	assert.Equal(t, "%midterm%", searchPattern("midterm"))
}

func TestFeedSearchFilterShape(t *testing.T) {
	pattern := searchPattern("exam")
	query := metaQuery().
		OrderBy("p.created_at DESC").
		Where(squirrel.Or{
			squirrel.ILike{"p.content": pattern},
			squirrel.ILike{"u.name": pattern},
		})

	sql, args, err := query.ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "p.content ILIKE $")
	assert.Contains(t, sql, "u.name ILIKE $")
	assert.Contains(t, sql, "ORDER BY p.created_at DESC")
	assert.Equal(t, []interface{}{"%exam%", "%exam%"}, args)
}
