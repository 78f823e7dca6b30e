package models

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// The sync endpoint serialises documents straight from the server's document
// store, so scalar fields may arrive either as plain JSON or as MongoDB
// Extended JSON ({"$oid": ...}, {"$numberInt": "5"}, {"$date": ...}, ...).
// Envelopes are decoded by the bson package in relaxed mode; the Ext* types
// add the origin's own quirks on top: numeric strings from form posts, 0/1
// deletion flags, like lists and zone-less timestamps.

// ErrUnsupportedEncoding is returned when a field holds a JSON shape that
// none of the known plain or envelope encodings match.
var ErrUnsupportedEncoding = errors.New("unsupported field encoding")

// timeLayouts are tried in order when a timestamp arrives as a string.
var timeLayouts = []string{
	WatermarkLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999",
	"2006-01-02T15:04:05.999999",
	time.RFC3339Nano,
}

// ExtString is a plain string or an ObjectId.
type ExtString string

func (s *ExtString) UnmarshalJSON(data []byte) error {
	v, err := decodeExtValue(data)
	if err != nil {
		return err
	}

	switch v.Type {
	case bson.TypeNull, bson.TypeUndefined:
		*s = ""
	case bson.TypeObjectID:
		*s = ExtString(v.ObjectID().Hex())
	case bson.TypeString:
		*s = ExtString(v.StringValue())
	default:
		return unsupported("string", data)
	}
	return nil
}

// ExtInt is an integer that may arrive as a JSON number, a numeric string or
// a number envelope.
type ExtInt int64

func (n *ExtInt) UnmarshalJSON(data []byte) error {
	v, err := decodeExtValue(data)
	if err != nil {
		return err
	}

	switch v.Type {
	case bson.TypeInt32:
		*n = ExtInt(v.Int32())
		return nil
	case bson.TypeInt64:
		*n = ExtInt(v.Int64())
		return nil
	}

	f, err := numberValue(v, data)
	if err != nil {
		return err
	}
	*n = ExtInt(int64(f))
	return nil
}

// ExtFloat is a float that may arrive as a JSON number, a numeric string or a
// number envelope. Waypoint coordinates submitted through forms are stored as
// strings server-side.
type ExtFloat float64

func (f *ExtFloat) UnmarshalJSON(data []byte) error {
	v, err := decodeExtValue(data)
	if err != nil {
		return err
	}

	n, err := numberValue(v, data)
	if err != nil {
		return err
	}
	*f = ExtFloat(n)
	return nil
}

// ExtBool accepts true/false as well as the 0/1 integers used for the
// deletion flag.
type ExtBool bool

func (b *ExtBool) UnmarshalJSON(data []byte) error {
	v, err := decodeExtValue(data)
	if err != nil {
		return err
	}

	if v.Type == bson.TypeBoolean {
		*b = ExtBool(v.Boolean())
		return nil
	}

	n, err := numberValue(v, data)
	if err != nil {
		return err
	}
	*b = n != 0
	return nil
}

// ExtBinary is a byte slice that arrives either as a {"$binary": ...}
// envelope (canonical or legacy form) or as a plain base64 string.
type ExtBinary []byte

func (b *ExtBinary) UnmarshalJSON(data []byte) error {
	v, err := decodeExtValue(data)
	if err != nil {
		return err
	}

	switch v.Type {
	case bson.TypeNull, bson.TypeUndefined:
		*b = nil
	case bson.TypeBinary:
		_, payload := v.Binary()
		if len(payload) == 0 {
			*b = nil
			return nil
		}
		*b = bytes.Clone(payload)
	case bson.TypeString:
		encoded := v.StringValue()
		if encoded == "" {
			*b = nil
			return nil
		}
		decoded, decErr := base64.StdEncoding.DecodeString(encoded)
		if decErr != nil {
			return fmt.Errorf("decode base64 payload: %w", decErr)
		}
		*b = decoded
	default:
		return unsupported("binary", data)
	}
	return nil
}

// ExtTime is a UTC timestamp. Naive timestamps (no zone) are read as UTC.
type ExtTime time.Time

func (t *ExtTime) UnmarshalJSON(data []byte) error {
	v, err := decodeExtValue(data)
	if err != nil {
		return err
	}

	switch v.Type {
	case bson.TypeNull, bson.TypeUndefined:
		*t = ExtTime(time.Time{})
	case bson.TypeDateTime:
		*t = ExtTime(time.UnixMilli(v.DateTime()).UTC())
	case bson.TypeString:
		parsed, parseErr := parseTimestamp(v.StringValue())
		if parseErr != nil {
			return parseErr
		}
		*t = ExtTime(parsed)
	default:
		return unsupported("timestamp", data)
	}
	return nil
}

// Time returns the plain time value.
func (t ExtTime) Time() time.Time {
	return time.Time(t)
}

// LikeCount accepts either a number or the list of user ids who liked the
// itinerary, in which case the count is the list length.
type LikeCount int64

func (c *LikeCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var likers []json.RawMessage
		if err := json.Unmarshal(data, &likers); err != nil {
			return unsupported("likes", data)
		}
		*c = LikeCount(len(likers))
		return nil
	}

	var n ExtInt
	if err := n.UnmarshalJSON(data); err != nil {
		return err
	}
	*c = LikeCount(n)
	return nil
}

// extValue is the holder document a single field value is parsed into.
type extValue struct {
	V bson.RawValue `bson:"v"`
}

// decodeExtValue parses one relaxed or canonical Extended JSON value.
func decodeExtValue(data []byte) (bson.RawValue, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return bson.RawValue{}, unsupported("value", data)
	}

	doc := make([]byte, 0, len(data)+6)
	doc = append(doc, `{"v":`...)
	doc = append(doc, data...)
	doc = append(doc, '}')

	var holder extValue
	if err := bson.UnmarshalExtJSON(doc, false, &holder); err != nil {
		return bson.RawValue{}, fmt.Errorf("%w: %s: %w", ErrUnsupportedEncoding, data, err)
	}
	return holder.V, nil
}

// numberValue reads any numeric BSON value, a numeric string or null (zero).
func numberValue(v bson.RawValue, data []byte) (float64, error) {
	switch v.Type {
	case bson.TypeNull, bson.TypeUndefined:
		return 0, nil
	case bson.TypeInt32:
		return float64(v.Int32()), nil
	case bson.TypeInt64:
		return float64(v.Int64()), nil
	case bson.TypeDouble:
		return v.Double(), nil
	case bson.TypeDecimal128:
		return parseNumericString(v.Decimal128().String())
	case bson.TypeString:
		return parseNumericString(v.StringValue())
	default:
		return 0, unsupported("number", data)
	}
}

func parseNumericString(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: number %q", ErrUnsupportedEncoding, s)
	}
	return f, nil
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: timestamp %q", ErrUnsupportedEncoding, s)
}

func unsupported(kind string, data []byte) error {
	return fmt.Errorf("%w: %s: %s", ErrUnsupportedEncoding, kind, data)
}
