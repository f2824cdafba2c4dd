// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/learnhub/internal/platform/ctxutil"
	"github.com/taibuivan/learnhub/internal/platform/middleware"
	requestutil "github.com/taibuivan/learnhub/internal/platform/request"
	"github.com/taibuivan/learnhub/internal/platform/respond"
)

// Handler implements the HTTP layer for master data.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
	gate    middleware.AdminGate
}

// NewHandler constructs a new reference [Handler].
//
// gate guards every write route; reads are public.
func NewHandler(service *Service, gate middleware.AdminGate) *Handler {
	return &Handler{service: service, gate: gate}
}

// Routes returns a [chi.Router] configured with the reference domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	requireAdmin := middleware.RequireAdmin(handler.gate)

	// # Aggregate
	router.Get("/master-data", handler.getMasterData)

	// # Per-table endpoints
	router.Route("/categories", func(route chi.Router) {
		route.Get("/", handler.listCategories)
		route.With(requireAdmin).Post("/", handler.createCategory)
	})

	router.Route("/difficulty-levels", func(route chi.Router) {
		route.Get("/", handler.listDifficultyLevels)
		route.With(requireAdmin).Post("/", handler.createDifficultyLevel)
	})

	router.Route("/duration-units", func(route chi.Router) {
		route.Get("/", handler.listDurationUnits)
		route.With(requireAdmin).Post("/", handler.createDurationUnit)
	})

	router.Route("/content-types", func(route chi.Router) {
		route.Get("/", handler.listContentTypes)
		route.With(requireAdmin).Post("/", handler.createContentType)
	})

	return router
}

/*
GET /api/v1/master-data.

Description: Returns every active row of the four reference tables in one body.

Response:
  - 200: MasterData
  - 500: INTERNAL_ERROR "Failed to fetch master data"
*/
func (handler *Handler) getMasterData(writer http.ResponseWriter, request *http.Request) {
	data, err := handler.service.GetMasterData(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, data)
}

/*
GET /api/v1/categories.

Description: Lists all categories including inactive ones.

Response:
  - 200: []Category
  - 500: DATA_ACCESS_ERROR
*/
func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, categories)
}

/*
POST /api/v1/categories.

Request (Body):
  - CreateCategoryInput: JSON object

Response:
  - 201: Category
  - 400: VALIDATION_ERROR: Malformed JSON
  - 401: UNAUTHORIZED: Caller is not an admin
  - 500: DATA_ACCESS_ERROR
*/
func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	createResource(writer, request, DatasetCategories, handler.service.CreateCategory)
}

// GET /api/v1/difficulty-levels.
func (handler *Handler) listDifficultyLevels(writer http.ResponseWriter, request *http.Request) {
	levels, err := handler.service.ListDifficultyLevels(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, levels)
}

// POST /api/v1/difficulty-levels.
func (handler *Handler) createDifficultyLevel(writer http.ResponseWriter, request *http.Request) {
	createResource(writer, request, DatasetDifficultyLevels, handler.service.CreateDifficultyLevel)
}

// GET /api/v1/duration-units.
func (handler *Handler) listDurationUnits(writer http.ResponseWriter, request *http.Request) {
	units, err := handler.service.ListDurationUnits(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, units)
}

// POST /api/v1/duration-units.
func (handler *Handler) createDurationUnit(writer http.ResponseWriter, request *http.Request) {
	createResource(writer, request, DatasetDurationUnits, handler.service.CreateDurationUnit)
}

// GET /api/v1/content-types.
func (handler *Handler) listContentTypes(writer http.ResponseWriter, request *http.Request) {
	contentTypes, err := handler.service.ListContentTypes(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, contentTypes)
}

// POST /api/v1/content-types.
func (handler *Handler) createContentType(writer http.ResponseWriter, request *http.Request) {
	createResource(writer, request, DatasetContentTypes, handler.service.CreateContentType)
}

// createResource decodes the body into In, calls create and answers 201 with
// the stored row.
func createResource[In, Out any](
	writer http.ResponseWriter,
	request *http.Request,
	dataset string,
	create func(context.Context, In) (Out, error),
) {
	var input In

	// Decode request body
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	attrs := []any{slog.String("dataset", dataset)}
	if claims := requestutil.Claims(request); claims != nil {
		attrs = append(attrs, slog.String("actor_id", claims.UserID))
	}
	ctxutil.GetLogger(request.Context()).InfoContext(request.Context(), "reference_created", attrs...)

	respond.Created(writer, created)
}
