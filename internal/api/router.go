// internal/api/router.go
package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Catalog
	mux.HandleFunc("GET /catalog", h.listCatalog)

	// Selections
	mux.HandleFunc("POST /selections", h.createSelection)
	mux.HandleFunc("GET /selections/{selectionID}", h.getSelection)
	mux.HandleFunc("PUT /selections/{selectionID}/category", h.chooseCategory)
	mux.HandleFunc("PUT /selections/{selectionID}/difficulty", h.chooseDifficulty)
	mux.HandleFunc("POST /selections/{selectionID}/restart", h.restartSelection)

	// Sessions
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("POST /sessions/{sessionID}/answers", h.submitAnswer)
	mux.HandleFunc("GET /sessions/{sessionID}/report", h.getReport)
	mux.HandleFunc("POST /sessions/{sessionID}/try-again", h.tryAgain)
	mux.HandleFunc("POST /sessions/{sessionID}/restart", h.restartSession)
}
