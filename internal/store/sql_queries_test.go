// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectItinerariesQuery_SelectsAllColumns(t *testing.T) {
	query, args, err := buildSelectItinerariesQuery()
	require.NoError(t, err)
	assert.Empty(t, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "from itineraries")
	require.Contains(t, q, "order by last_modified desc")
	for _, c := range itineraryColumns {
		require.Contains(t, q, c)
	}
}

func Test_buildSelectItineraryQuery(t *testing.T) {
	query, args, err := buildSelectItineraryQuery("65f1")
	require.NoError(t, err)

	assert.Equal(t, []any{"65f1"}, args)
	assert.Contains(t, query, "WHERE id = ?")
	assert.NotContains(t, query, "$1", "sqlite uses question mark placeholders")
}

func Test_buildUpsertItineraryQuery(t *testing.T) {
	row := itineraryRow{ID: "a", LastModified: "2024-03-05 10:20:30", Waypoints: "[]", Deleted: true}

	query, args, err := buildUpsertItineraryQuery(row)
	require.NoError(t, err)

	require.Len(t, args, len(itineraryColumns))
	assert.Equal(t, "a", args[0])
	assert.Equal(t, "2024-03-05 10:20:30", args[6])
	assert.Equal(t, true, args[11])

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "insert into itineraries"))
	assert.Contains(t, q, "on conflict(id) do update set")
	assert.Contains(t, q, "last_modified = excluded.last_modified")
	assert.Contains(t, q, "deleted = excluded.deleted")
	assert.Contains(t, q, "where excluded.last_modified >= itineraries.last_modified")
	assert.Equal(t, len(itineraryColumns), strings.Count(query, "?"))
}

func Test_buildDeleteItinerariesQuery(t *testing.T) {
	query, args, err := buildDeleteItinerariesQuery()
	require.NoError(t, err)
	assert.Empty(t, args)
	assert.Equal(t, "DELETE FROM itineraries", query)
}

func Test_buildMaxLastModifiedQuery(t *testing.T) {
	query, _, err := buildMaxLastModifiedQuery()
	require.NoError(t, err)
	assert.Equal(t, "SELECT MAX(last_modified) FROM itineraries", query)
}

func Test_buildMatchCacheEntryQuery_PrefersGeneration(t *testing.T) {
	query, args, err := buildMatchCacheEntryQuery("/static/css/style.css", "mapster-cache-v2")
	require.NoError(t, err)

	assert.Equal(t, []any{"/static/css/style.css", "mapster-cache-v2"}, args)
	assert.Contains(t, query, "WHERE request_key = ?")
	assert.Contains(t, query, "ORDER BY CASE WHEN cache_name = ? THEN 0 ELSE 1 END, stored_at DESC")
}

func Test_buildUpsertCacheEntryQuery(t *testing.T) {
	query, args, err := buildUpsertCacheEntryQuery(cacheEntryRow{CacheName: "v1", RequestKey: "/", Status: 200})
	require.NoError(t, err)

	require.Len(t, args, len(cacheEntryColumns))
	assert.Contains(t, strings.ToLower(query), "on conflict(cache_name, request_key) do update set")
}

func Test_buildSelectCacheNamesQuery(t *testing.T) {
	query, _, err := buildSelectCacheNamesQuery()
	require.NoError(t, err)
	assert.Equal(t, "SELECT DISTINCT cache_name FROM cache_entries ORDER BY cache_name", query)
}

func Test_buildDeleteCacheQuery(t *testing.T) {
	query, args, err := buildDeleteCacheQuery("mapster-cache-v1")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM cache_entries WHERE cache_name = ?", query)
	assert.Equal(t, []any{"mapster-cache-v1"}, args)
}
