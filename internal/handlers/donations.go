package handlers

import (
	"errors"
	"net/http"

	"github.com/diewo77/go-relief/internal/middleware"
	"github.com/diewo77/go-relief/internal/models"
	"github.com/diewo77/go-relief/internal/services"
	"github.com/diewo77/go-relief/internal/store"
	"github.com/diewo77/go-relief/view"
)

type DonationHandler struct {
	store *store.Provider
}

func NewDonationHandler(p *store.Provider) *DonationHandler {
	return &DonationHandler{store: p}
}

// Handle records a donation on POST and always ends by listing donations.
// The insert and the listing share one connection scope.
func (h *DonationHandler) Handle(w http.ResponseWriter, r *http.Request) {
	log := middleware.Log(r.Context())
	var notices []view.Notice
	var donation *models.Donation

	if r.Method == http.MethodPost {
		d, violations := services.ResolveDonation(services.DonationFormFromRequest(r))
		if !violations.Empty() {
			log.WithField("violations", violations.Error()).Info("donation rejected")
			for _, code := range services.ViolationNotices(violations) {
				notices = append(notices, notice(r, view.NoticeDanger, code))
			}
		}
		donation = d
	}

	rows := []models.DonationListing{}
	err := h.store.Acquire(r.Context(), func(c *store.Conn) error {
		if donation != nil {
			if err := c.InsertDonation(donation); err != nil {
				log.WithError(err).Error("insert donation")
				notices = append(notices, notice(r, view.NoticeDanger, "donation_failed"))
			} else {
				notices = append(notices, notice(r, view.NoticeSuccess, "donation_added"))
			}
		}
		list, err := c.ListDonations()
		if err != nil {
			return err
		}
		rows = list
		return nil
	})
	if err != nil {
		log.WithError(err).Error("list donations")
		if donation != nil && errors.Is(err, store.ErrUnavailable) {
			notices = append(notices, notice(r, view.NoticeDanger, "donation_failed"))
		}
		notices = append(notices, notice(r, view.NoticeDanger, failureCode(err)))
	}
	render(w, r, "donations.html", map[string]any{"Donations": rows}, notices...)
}
