package handlers

import (
	"net/http"

	"github.com/diewo77/go-relief/internal/middleware"
	"github.com/diewo77/go-relief/internal/models"
	"github.com/diewo77/go-relief/internal/store"
	"github.com/diewo77/go-relief/view"
)

// ListingHandler renders the read-only resource tables. A failed query never
// fails the request: the page shows an empty table and a notice.
type ListingHandler struct {
	store *store.Provider
}

func NewListingHandler(p *store.Provider) *ListingHandler {
	return &ListingHandler{store: p}
}

func (h *ListingHandler) list(w http.ResponseWriter, r *http.Request, page, key string, load func(*store.Conn) (any, error), empty any) {
	var rows any
	err := h.store.Acquire(r.Context(), func(c *store.Conn) error {
		var err error
		rows, err = load(c)
		return err
	})
	if err != nil {
		middleware.Log(r.Context()).WithError(err).WithField("page", page).Error("listing query failed")
		render(w, r, page, map[string]any{key: empty}, notice(r, view.NoticeDanger, failureCode(err)))
		return
	}
	render(w, r, page, map[string]any{key: rows})
}

func (h *ListingHandler) ReliefCenters(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "reliefcenters.html", "Centers", func(c *store.Conn) (any, error) {
		return c.ListReliefCenters()
	}, []models.ReliefCenter{})
}

func (h *ListingHandler) Volunteers(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "volunteers.html", "Volunteers", func(c *store.Conn) (any, error) {
		return c.ListVolunteers()
	}, []models.Volunteer{})
}

func (h *ListingHandler) Victims(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "victims.html", "Victims", func(c *store.Conn) (any, error) {
		return c.ListVictims()
	}, []models.VictimListing{})
}

func (h *ListingHandler) Supplies(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "supplies.html", "Supplies", func(c *store.Conn) (any, error) {
		return c.ListSupplies()
	}, []models.SupplyListing{})
}

func (h *ListingHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "alerts.html", "Alerts", func(c *store.Conn) (any, error) {
		return c.ListAlerts()
	}, []models.AlertListing{})
}
