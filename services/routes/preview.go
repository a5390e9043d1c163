package routes

import (
	"net/http"

	"github.com/remivalade/MintMyMood/database"
	"github.com/remivalade/MintMyMood/renderer"
	servicesContext "github.com/remivalade/MintMyMood/services/context"
	"github.com/remivalade/MintMyMood/services/utils"
	globalUtils "github.com/remivalade/MintMyMood/utils"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type PreviewRequest struct {
	Text    string `json:"text" validate:"required,max=400"`
	Mood    string `json:"mood" validate:"required,mood"`
	ChainID int64  `json:"chainId"`
}

type PreviewResponse struct {
	SVG string `json:"svg"`
}

type previewRouteHandlers struct {
	db    *gorm.DB
	cache globalUtils.Cache[renderer.Content, string]
}

func newPreviewRouteHandlers(ctx servicesContext.ServicesContext) *previewRouteHandlers {
	return &previewRouteHandlers{
		db:    ctx.DB(),
		cache: globalUtils.NewCache[renderer.Content, string](ctx.Config().Services.PreviewCacheSize),
	}
}

// Rendering is pure, so cached cards never go stale
func (rh *previewRouteHandlers) render(content renderer.Content) string {
	if svg, ok := rh.cache.Get(content); ok {
		return svg
	}
	svg := renderer.RenderSVG(content)
	rh.cache.Add(content, svg)
	return svg
}

func (rh *previewRouteHandlers) previewCard() utils.RouteHandler {
	handler := func(request PreviewRequest) (PreviewResponse, *utils.ErrorHandler) {
		svg := rh.render(renderer.Content{
			Text:    request.Text,
			Mood:    database.Mood(request.Mood).Glyph(),
			ChainID: request.ChainID,
		})
		return PreviewResponse{SVG: svg}, nil
	}
	return utils.NewRouteHandler(handler, http.MethodPost, PreviewRequest{}, PreviewResponse{})
}

// Serves the stored thought as an SVG document. Unminted thoughts get the
// chain-agnostic classic skin, minted ones the skin of their current
// chain.
func (rh *previewRouteHandlers) thoughtCard() utils.RouteHandler {
	handler := func(w http.ResponseWriter, params map[string]string) {
		thought, err := database.FetchThought(rh.db, params["id"])
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "thought not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		chainID := renderer.ChainIDClassic
		var blockNumber uint64
		if thought.IsMinted() && thought.CurrentChainID != nil {
			chainID = *thought.CurrentChainID
			if thought.MintedBlock != nil {
				blockNumber = *thought.MintedBlock
			}
		}
		svg := rh.render(renderer.Content{
			Text:        thought.Text,
			Mood:        thought.Mood.Glyph(),
			ChainID:     chainID,
			BlockNumber: blockNumber,
		})

		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write([]byte(svg))
	}
	return utils.NewRawRouteHandler(handler, http.MethodGet, "image/svg+xml", "")
}

func AddPreviewRoutes(router utils.Router, ctx servicesContext.ServicesContext) {
	rh := newPreviewRouteHandlers(ctx)

	subrouter := router.WithPrefix("/cards", "Cards")
	subrouter.AddRoute("/preview", rh.previewCard(), "Render a preview card")
	subrouter.AddRoute("/{id}/svg", rh.thoughtCard(), "Render the card of a stored thought")
}
