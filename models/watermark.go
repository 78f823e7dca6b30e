package models

import (
	"fmt"
	"time"
)

// WatermarkLayout is the timestamp format understood by the sync endpoint.
const WatermarkLayout = "2006-01-02 15:04:05"

// MinWatermark is the "beginning of time" sentinel used for a full sync when
// the local store holds no records.
var MinWatermark = Watermark(time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC))

// Watermark is the latest last-modified timestamp known to the local store.
// It is never stored on its own: it is recomputed before every sync pass.
type Watermark time.Time

// NewWatermark truncates t to second precision in UTC.
func NewWatermark(t time.Time) Watermark {
	return Watermark(t.UTC().Truncate(time.Second))
}

// ParseWatermark parses a timestamp in [WatermarkLayout] as UTC.
func ParseWatermark(s string) (Watermark, error) {
	t, err := time.ParseInLocation(WatermarkLayout, s, time.UTC)
	if err != nil {
		return Watermark{}, fmt.Errorf("parse watermark %q: %w", s, err)
	}
	return Watermark(t), nil
}

// Time returns the watermark as a time.Time.
func (w Watermark) Time() time.Time {
	return time.Time(w)
}

// String formats the watermark as YYYY-MM-DD HH:MM:SS in UTC.
func (w Watermark) String() string {
	return time.Time(w).UTC().Format(WatermarkLayout)
}

// IsMin reports whether w is the full-sync sentinel.
func (w Watermark) IsMin() bool {
	return time.Time(w).Equal(time.Time(MinWatermark))
}
