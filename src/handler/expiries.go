package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/jiaming2012/expiry-tracker/src/eventconsumers"
	"github.com/jiaming2012/expiry-tracker/src/eventmodels"
)

const (
	ManualRefreshEvery = 5 * time.Second
	ManualRefreshBurst = 1
)

type SnapshotReader interface {
	Snapshot() eventmodels.ExpirySnapshot
}

type RefreshTrigger interface {
	TriggerRefresh() error
}

type refreshAcceptedResponse struct {
	Status string `json:"status"`
}

type expiriesHandler struct {
	store   SnapshotReader
	trigger RefreshTrigger
	limiter *rate.Limiter
}

func (h *expiriesHandler) getExpiries(w http.ResponseWriter, r *http.Request) {
	if err := setResponse(h.store.Snapshot(), http.StatusOK, w); err != nil {
		log.WithContext(r.Context()).Errorf("getExpiries: %v", err)
	}
}

func (h *expiriesHandler) postRefresh(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow() {
		setErrorResponse("rate_limited", http.StatusTooManyRequests, errors.New("manual refresh requested too often"), w)
		return
	}

	if err := h.trigger.TriggerRefresh(); err != nil {
		if errors.Is(err, eventconsumers.ErrRefreshInFlight) {
			setErrorResponse("refresh_in_flight", http.StatusConflict, err, w)
			return
		}

		setErrorResponse("refresh_unavailable", http.StatusServiceUnavailable, err, w)
		return
	}

	if err := setResponse(refreshAcceptedResponse{Status: "started"}, http.StatusAccepted, w); err != nil {
		log.WithContext(r.Context()).Errorf("postRefresh: %v", err)
	}
}

func getHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func handle(router *mux.Router, path string, fn http.HandlerFunc) *mux.Route {
	return router.Handle(path, otelhttp.WithRouteTag(path, fn))
}

// SetupHandler mounts the expiry routes on router. The limiter only guards
// manual refreshes; a nil limiter gets the default rate.
func SetupHandler(router *mux.Router, store SnapshotReader, trigger RefreshTrigger, limiter *rate.Limiter) {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Every(ManualRefreshEvery), ManualRefreshBurst)
	}

	h := &expiriesHandler{
		store:   store,
		trigger: trigger,
		limiter: limiter,
	}

	handle(router, "/expiries", h.getExpiries).Methods(http.MethodGet)
	handle(router, "/expiries/refresh", h.postRefresh).Methods(http.MethodPost)
	handle(router, "/healthz", getHealthz).Methods(http.MethodGet)
}
