package routes

import (
	"net/http"

	"github.com/remivalade/MintMyMood/database"
	servicesContext "github.com/remivalade/MintMyMood/services/context"
	"github.com/remivalade/MintMyMood/services/utils"

	"gorm.io/gorm"
)

type statsRouteHandlers struct {
	db *gorm.DB
}

func newStatsRouteHandlers(ctx servicesContext.ServicesContext) *statsRouteHandlers {
	return &statsRouteHandlers{db: ctx.DB()}
}

func (rh *statsRouteHandlers) userStats() utils.RouteHandler {
	handler := func(params map[string]string) (*database.UserStats, *utils.ErrorHandler) {
		stats, err := database.FetchUserStats(rh.db, params["address"])
		if err != nil {
			return nil, utils.InternalServerErrorHandler(err)
		}
		return stats, nil
	}
	return utils.NewParamRouteHandler(handler, http.MethodGet,
		map[string]string{"address": "Owner address"}, &database.UserStats{})
}

func AddStatsRoutes(router utils.Router, ctx servicesContext.ServicesContext) {
	rh := newStatsRouteHandlers(ctx)

	subrouter := router.WithPrefix("/stats", "Stats")
	subrouter.AddRoute("/{address}", rh.userStats(), "Aggregate stats of an owner")
}
