package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	itinerariesTable  = "itineraries"
	cacheEntriesTable = "cache_entries"

	// storedTimeLayout keeps stored timestamps fixed-width so that text
	// comparison and MAX() order them chronologically.
	storedTimeLayout = "2006-01-02 15:04:05"
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var itineraryColumns = []string{
	"id",
	"user_id",
	"name",
	"description",
	"waypoints",
	"upload_at",
	"last_modified",
	"num_views",
	"likes",
	"image",
	"image_format",
	"deleted",
}

var cacheEntryColumns = []string{
	"cache_name",
	"request_key",
	"status",
	"header",
	"body",
	"stored_at",
}

func buildSelectItinerariesQuery() (string, []any, error) {
	return sqlite.
		Select(itineraryColumns...).
		From(itinerariesTable).
		OrderBy("last_modified DESC", "id").
		ToSql()
}

func buildSelectItineraryQuery(id string) (string, []any, error) {
	return sqlite.
		Select(itineraryColumns...).
		From(itinerariesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpsertItineraryQuery(row itineraryRow) (string, []any, error) {
	return sqlite.
		Insert(itinerariesTable).
		Columns(itineraryColumns...).
		Values(
			row.ID,
			row.UserID,
			row.Name,
			row.Description,
			row.Waypoints,
			row.UploadedAt,
			row.LastModified,
			row.NumViews,
			row.Likes,
			row.Image,
			row.ImageFormat,
			row.Deleted,
		).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			name = excluded.name,
			description = excluded.description,
			waypoints = excluded.waypoints,
			upload_at = excluded.upload_at,
			last_modified = excluded.last_modified,
			num_views = excluded.num_views,
			likes = excluded.likes,
			image = excluded.image,
			image_format = excluded.image_format,
			deleted = excluded.deleted
		WHERE excluded.last_modified >= itineraries.last_modified`).
		ToSql()
}

func buildDeleteItinerariesQuery() (string, []any, error) {
	return sqlite.Delete(itinerariesTable).ToSql()
}

func buildMaxLastModifiedQuery() (string, []any, error) {
	return sqlite.
		Select("MAX(last_modified)").
		From(itinerariesTable).
		ToSql()
}

func buildUpsertCacheEntryQuery(row cacheEntryRow) (string, []any, error) {
	return sqlite.
		Insert(cacheEntriesTable).
		Columns(cacheEntryColumns...).
		Values(row.CacheName, row.RequestKey, row.Status, row.Header, row.Body, row.StoredAt).
		Suffix(`ON CONFLICT(cache_name, request_key) DO UPDATE SET
			status = excluded.status,
			header = excluded.header,
			body = excluded.body,
			stored_at = excluded.stored_at`).
		ToSql()
}

// buildMatchCacheEntryQuery selects the entry for requestKey, taking the
// preferred generation first and the most recently stored one otherwise.
func buildMatchCacheEntryQuery(requestKey, preferred string) (string, []any, error) {
	return sqlite.
		Select(cacheEntryColumns...).
		From(cacheEntriesTable).
		Where(sq.Eq{"request_key": requestKey}).
		OrderByClause("CASE WHEN cache_name = ? THEN 0 ELSE 1 END", preferred).
		OrderBy("stored_at DESC").
		ToSql()
}

func buildSelectCacheNamesQuery() (string, []any, error) {
	return sqlite.
		Select("cache_name").
		Distinct().
		From(cacheEntriesTable).
		OrderBy("cache_name").
		ToSql()
}

func buildDeleteCacheQuery(cacheName string) (string, []any, error) {
	return sqlite.
		Delete(cacheEntriesTable).
		Where(sq.Eq{"cache_name": cacheName}).
		ToSql()
}
