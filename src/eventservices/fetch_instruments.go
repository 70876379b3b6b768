package eventservices

import (
	"context"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/expiry-tracker/src/eventmodels"
	"github.com/jiaming2012/expiry-tracker/src/utils"
)

var dumpJSON = jsoniter.Config{
	EscapeHTML: false,
	UseNumber:  true,
}.Froze()

// ProxiedURL routes target through a prefix-style CORS proxy such as
// "https://corsproxy.io/?url=". An empty prefix returns target unchanged.
func ProxiedURL(proxyPrefix, target string) string {
	if proxyPrefix == "" {
		return target
	}

	return proxyPrefix + url.QueryEscape(target)
}

func FetchInstrumentsCsv(ctx context.Context, client *http.Client, csvURL, proxyPrefix string) (string, error) {
	target := ProxiedURL(proxyPrefix, csvURL)
	log.Debugf("FetchInstrumentsCsv: fetching %s", target)

	body, err := utils.Get(ctx, client, target, map[string]string{"Accept": "text/csv, text/plain"})
	if err != nil {
		return "", eventmodels.NewFeedError(eventmodels.TransportFeedError, eventmodels.CsvFeed, "failed to fetch instrument list", err)
	}

	if utils.IsGzip(body) {
		return "", eventmodels.NewFeedError(eventmodels.DecodeFeedError, eventmodels.CsvFeed, "received compressed bytes where text was expected", nil)
	}

	return string(body), nil
}

// FetchInstrumentsJsonDump downloads the instrument dump and decodes it into a
// generic value. Gzip framing is detected from the payload itself.
func FetchInstrumentsJsonDump(ctx context.Context, client *http.Client, dumpURL string) (interface{}, error) {
	log.Debugf("FetchInstrumentsJsonDump: fetching %s", dumpURL)

	body, err := utils.Get(ctx, client, dumpURL, map[string]string{"Accept": "application/json, application/gzip"})
	if err != nil {
		return nil, eventmodels.NewFeedError(eventmodels.TransportFeedError, eventmodels.JsonDumpFeed, "failed to fetch instrument dump", err)
	}

	if utils.IsGzip(body) {
		body, err = utils.Gunzip(body)
		if err != nil {
			return nil, eventmodels.NewFeedError(eventmodels.DecodeFeedError, eventmodels.JsonDumpFeed, "failed to decompress instrument dump", err)
		}
	}

	var value interface{}
	if err := dumpJSON.Unmarshal(body, &value); err != nil {
		return nil, eventmodels.NewFeedError(eventmodels.DecodeFeedError, eventmodels.JsonDumpFeed, "failed to decode instrument dump as json", err)
	}

	return value, nil
}
