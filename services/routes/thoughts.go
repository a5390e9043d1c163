package routes

import (
	"context"
	"net/http"

	"github.com/remivalade/MintMyMood/database"
	"github.com/remivalade/MintMyMood/minter"
	servicesContext "github.com/remivalade/MintMyMood/services/context"
	"github.com/remivalade/MintMyMood/services/utils"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type SaveThoughtRequest struct {
	ID    string `json:"id" validate:"omitempty,uuid4"`
	Owner string `json:"owner" validate:"required,eth-addr"`
	Text  string `json:"text" validate:"required,max=400"`
	Mood  string `json:"mood" validate:"required,mood"`
}

type ListThoughtsResponse []ThoughtResponse

type MoodResponse struct {
	Mood  string `json:"mood"`
	Glyph string `json:"glyph"`
}

type ListMoodsResponse []MoodResponse

type thoughtRouteHandlers struct {
	db     *gorm.DB
	minter *minter.Minter
}

func newThoughtRouteHandlers(ctx servicesContext.ServicesContext, m *minter.Minter) *thoughtRouteHandlers {
	return &thoughtRouteHandlers{
		db:     ctx.DB(),
		minter: m,
	}
}

func (rh *thoughtRouteHandlers) saveThought() utils.RouteHandler {
	handler := func(request SaveThoughtRequest) (ThoughtResponse, *utils.ErrorHandler) {
		thought, err := rh.minter.SaveDraft(context.Background(), minter.Draft{
			ID:    request.ID,
			Owner: request.Owner,
			Text:  request.Text,
			Mood:  database.Mood(request.Mood),
		})
		if err != nil {
			return ThoughtResponse{}, saveErrorHandler(err)
		}
		return newThoughtResponse(thought), nil
	}
	return utils.NewRouteHandler(handler, http.MethodPost, SaveThoughtRequest{}, ThoughtResponse{})
}

func saveErrorHandler(err error) *utils.ErrorHandler {
	var validationErr *minter.ValidationError
	if errors.As(err, &validationErr) {
		return utils.HttpErrorHandler(http.StatusBadRequest, validationErr.Error())
	}
	return utils.InternalServerErrorHandler(err)
}

func (rh *thoughtRouteHandlers) listThoughts() utils.RouteHandler {
	handler := func(params map[string]string) (ListThoughtsResponse, *utils.ErrorHandler) {
		thoughts, err := database.FetchThoughtsForOwner(rh.db, params["address"])
		if err != nil {
			return nil, utils.InternalServerErrorHandler(err)
		}
		response := make(ListThoughtsResponse, len(thoughts))
		for i := range thoughts {
			response[i] = newThoughtResponse(&thoughts[i])
		}
		return response, nil
	}
	return utils.NewParamRouteHandler(handler, http.MethodGet,
		map[string]string{"address": "Owner address"}, ListThoughtsResponse{})
}

func (rh *thoughtRouteHandlers) listMoods() utils.RouteHandler {
	handler := func(params map[string]string) (ListMoodsResponse, *utils.ErrorHandler) {
		moods := database.Moods()
		response := make(ListMoodsResponse, len(moods))
		for i, mood := range moods {
			response[i] = MoodResponse{Mood: string(mood), Glyph: mood.Glyph()}
		}
		return response, nil
	}
	return utils.NewParamRouteHandler(handler, http.MethodGet,
		map[string]string{}, ListMoodsResponse{})
}

func (rh *thoughtRouteHandlers) deleteThought() utils.RouteHandler {
	handler := func(params map[string]string) (ThoughtResponse, *utils.ErrorHandler) {
		thought, err := database.FetchThought(rh.db, params["id"])
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ThoughtResponse{}, utils.HttpErrorHandler(http.StatusNotFound, "thought not found")
		}
		if err != nil {
			return ThoughtResponse{}, utils.InternalServerErrorHandler(err)
		}
		if thought.IsMinted() {
			return ThoughtResponse{}, utils.HttpErrorHandler(http.StatusConflict, "minted thoughts cannot be deleted")
		}
		if err := database.DeleteThought(rh.db, thought.ID); err != nil {
			return ThoughtResponse{}, utils.InternalServerErrorHandler(err)
		}
		return newThoughtResponse(thought), nil
	}
	return utils.NewParamRouteHandler(handler, http.MethodDelete,
		map[string]string{"id": "Thought id"}, ThoughtResponse{})
}

func AddThoughtRoutes(router utils.Router, ctx servicesContext.ServicesContext, m *minter.Minter) {
	rh := newThoughtRouteHandlers(ctx, m)

	subrouter := router.WithPrefix("/thoughts", "Thoughts")
	subrouter.AddRoute("/", rh.saveThought(), "Save a thought draft")
	subrouter.AddRoute("/moods", rh.listMoods(), "List the mood catalog")
	subrouter.AddRoute("/owner/{address}", rh.listThoughts(), "List thoughts of an owner")
	subrouter.AddRoute("/{id}", rh.deleteThought(), "Delete an unminted thought")
}
