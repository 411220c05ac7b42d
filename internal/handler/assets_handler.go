package handler

import (
	"net/http"
	"strconv"
)

// overlayCSS styles the highlight overlays the client paints on top of the
// rendered pages. Serving it from the API keeps the overlay geometry rules
// versioned with the server that computes them.
const overlayCSS = `.pdf-page {
  position: relative;
}

.pdf-page .text-layer {
  position: absolute;
  inset: 0;
  color: transparent;
}

.pdf-page .text-layer ::selection {
  background: rgba(255, 235, 59, 0.45);
}

.highlight-overlay {
  position: absolute;
  pointer-events: auto;
  mix-blend-mode: multiply;
  border-radius: 1px;
  cursor: pointer;
}

.highlight-overlay:hover {
  outline: 1px solid rgba(0, 0, 0, 0.35);
}

@media print {
  .highlight-overlay {
    display: none;
  }
}
`

// AssetsHandler serves the static assets the viewer embeds
type AssetsHandler struct{}

// NewAssetsHandler creates a new assets handler
func NewAssetsHandler() *AssetsHandler {
	return &AssetsHandler{}
}

// OverlayStylesheet handles GET /assets/overlay.css. Clients can re-request
// it freely; the stylesheet is a constant.
func (h *AssetsHandler) OverlayStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(overlayCSS)))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(overlayCSS))
}
