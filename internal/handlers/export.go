package handlers

import (
	"net/http"

	"github.com/diewo77/go-relief/httpx"
	"github.com/diewo77/go-relief/internal/middleware"
	"github.com/diewo77/go-relief/internal/store"
)

type ExportHandler struct {
	store *store.Provider
}

func NewExportHandler(p *store.Provider) *ExportHandler {
	return &ExportHandler{store: p}
}

// CheckAll dumps every allow-listed table as JSON keyed by table name.
// Any failure yields a 500 and no partial payload.
func (h *ExportHandler) CheckAll(w http.ResponseWriter, r *http.Request) {
	var out map[string][]map[string]any
	err := h.store.Acquire(r.Context(), func(c *store.Conn) error {
		var err error
		out, err = c.ExportAll()
		return err
	})
	if err != nil {
		middleware.Log(r.Context()).WithError(err).Error("bulk export failed")
		httpx.JSONError(w, http.StatusInternalServerError, "export_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}
