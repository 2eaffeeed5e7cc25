package api

import (
	"net/http"

	"github.com/remaimber-it/quiz-backend/internal/domain/catalog"
)

type CatalogCategoryResponse struct {
	Name         string   `json:"name" example:"HTML"`
	Image        string   `json:"image" example:"html.png"`
	Difficulties []string `json:"difficulties" example:"easy,medium,hard"`
	Random       bool     `json:"random" example:"false"`
}

// listCatalog returns the category cards.
// @Summary      List quiz categories
// @Description  Fixed catalog of categories with their difficulty levels, in display order.
// @Tags         Catalog
// @Produce      json
// @Success      200  {array}   CatalogCategoryResponse
// @Router       /catalog [get]
func (h *Handler) listCatalog(w http.ResponseWriter, r *http.Request) {
	categories := catalog.All()

	response := make([]CatalogCategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = CatalogCategoryResponse{
			Name:         c.Name,
			Image:        c.Image,
			Difficulties: c.Difficulties,
			Random:       catalog.IsRandom(c.Name),
		}
	}

	respondJSON(w, http.StatusOK, response)
}
