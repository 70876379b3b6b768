package feedparsers

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jiaming2012/expiry-tracker/src/eventmodels"
)

// ParseJSONArray reads records out of an already decoded JSON value, which
// must be an array. Fields are looked up by name and missing ones read as
// empty. Elements that are not objects are skipped.
func ParseJSONArray(value interface{}, fields JsonFields) eventmodels.ParseResult {
	fields = fields.WithDefaults()

	var items []map[string]interface{}
	var skipped int

	switch v := value.(type) {
	case []interface{}:
		items = make([]map[string]interface{}, 0, len(v))
		for _, item := range v {
			obj, ok := item.(map[string]interface{})
			if !ok {
				skipped++
				continue
			}

			items = append(items, obj)
		}
	case []map[string]interface{}:
		items = v
	default:
		return eventmodels.NewUnusableParseResult(eventmodels.NewFeedError(eventmodels.StructuralFeedError, eventmodels.JsonDumpFeed, fmt.Sprintf("payload is %T, not an array", value), nil))
	}

	records := make([]eventmodels.RawInstrumentRecord, 0, len(items))
	for _, obj := range items {
		records = append(records, eventmodels.NewRawInstrumentRecord(
			stringField(obj, fields.Kind),
			stringField(obj, fields.Symbol),
			expiryField(obj, fields.Expiry),
		))
	}

	return eventmodels.ParseResult{
		Records: records,
		Skipped: skipped,
	}
}

func stringField(obj map[string]interface{}, name string) string {
	switch v := obj[name].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func expiryField(obj map[string]interface{}, name string) eventmodels.RawExpiry {
	switch v := obj[name].(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return eventmodels.NewEpochExpiry(n)
		}

		f, err := v.Float64()
		if err != nil {
			return eventmodels.NewEpochExpiry(0)
		}

		return eventmodels.NewEpochExpiryFromFloat(f)
	case float64:
		return eventmodels.NewEpochExpiryFromFloat(v)
	case int64:
		return eventmodels.NewEpochExpiry(v)
	case int:
		return eventmodels.NewEpochExpiry(int64(v))
	case string:
		return eventmodels.NewTextExpiry(v)
	default:
		return eventmodels.NewTextExpiry("")
	}
}
