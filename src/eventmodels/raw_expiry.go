package eventmodels

import (
	"math"
	"strconv"
	"strings"
)

// RawExpiry is an expiry value exactly as a feed delivered it: free text in an
// unknown date format, or an epoch-millisecond timestamp.
type RawExpiry struct {
	Text    string
	Millis  int64
	IsEpoch bool
}

func NewTextExpiry(text string) RawExpiry {
	return RawExpiry{Text: text}
}

func NewEpochExpiry(millis int64) RawExpiry {
	return RawExpiry{Millis: millis, IsEpoch: true}
}

// NewEpochExpiryFromFloat truncates fractional milliseconds. NaN and infinities
// become a zero timestamp, which never normalizes.
func NewEpochExpiryFromFloat(millis float64) RawExpiry {
	if math.IsNaN(millis) || math.IsInf(millis, 0) || millis > math.MaxInt64 || millis < math.MinInt64 {
		return NewEpochExpiry(0)
	}

	return NewEpochExpiry(int64(millis))
}

// IsEmpty reports an absent value: blank text or a zero timestamp.
func (r RawExpiry) IsEmpty() bool {
	if r.IsEpoch {
		return r.Millis == 0
	}

	return strings.TrimSpace(r.Text) == ""
}

func (r RawExpiry) String() string {
	if r.IsEpoch {
		return strconv.FormatInt(r.Millis, 10)
	}

	return r.Text
}
