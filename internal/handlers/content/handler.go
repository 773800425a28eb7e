package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"pousada/infras/otel"
	"pousada/internal/domains/content/model"
	"pousada/internal/domains/content/model/dto"
	"pousada/internal/domains/content/service"
	"pousada/shared"
	"pousada/shared/constant"
	gDto "pousada/shared/dto"
	"pousada/shared/validator"
	"pousada/transport/http/response"
)

type Handler struct {
	service service.Content
	otel    otel.Otel
}

func New(service service.Content, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/contents", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateContent)
		routerGroup.Get("/", handler.GetContents)
		routerGroup.Get("/slug/{slug}", handler.GetContentBySlug)
		routerGroup.Get("/{id}", handler.GetContentByID)
		routerGroup.Patch("/{id}", handler.UpdateContent)
		routerGroup.Delete("/{id}", handler.DeleteContent)
	})
}

// CreateContent handles the creation of a new content block.
// @Summary Create a new content block
// @Description Create a new editable block of site copy.
// @Tags Content
// @Accept json
// @Produce json
// @Param request body dto.CreateContentRequest true "Create Content Request"
// @Success 201 {object} response.Message "Content created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error "Slug already in use"
// @Failure 500 {object} response.Error
// @Router /v1/contents [post]
// @Security BearerAuth
func (handler *Handler) CreateContent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContent")
	defer scope.End()

	req := dto.CreateContentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create content")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Content created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Content created successfully")
}

// GetContents retrieves all content blocks based on query parameters.
// @Summary Get all content blocks
// @Description Retrieve all content blocks with optional filtering and pagination.
// @Tags Content
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param title query string false "Filter by title"
// @Param published query boolean false "Filter by published status"
// @Success 200 {object} dto.GetContentsResponse "List of content blocks"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contents [get]
// @Security BearerAuth
func (handler *Handler) GetContents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContents")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if title := r.URL.Query().Get(model.FieldTitle); title != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTitle,
			Operator: gDto.FilterOperatorLike,
			Value:    title,
			Table:    model.TableName,
		})
	}

	if published := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldPublished)); published != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPublished,
			Operator: gDto.FilterOperatorEq,
			Value:    *published,
			Table:    model.TableName,
		})
	}

	contents, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contents")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contents retrieved successfully")

	response.WithJSON(w, http.StatusOK, contents)
}

// GetContentBySlug retrieves a published content block by its slug.
// @Summary Get a content block by slug
// @Description Retrieve a published content block by its slug, for the public site.
// @Tags Content
// @Accept json
// @Produce json
// @Param slug path string true "Content slug"
// @Success 200 {object} dto.ContentResponse "Content details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contents/slug/{slug} [get]
func (handler *Handler) GetContentBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContentBySlug")
	defer scope.End()

	slug := chi.URLParam(r, "slug")

	content, err := handler.service.GetBySlug(ctx, slug)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get content by slug")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Content retrieved successfully")

	response.WithJSON(w, http.StatusOK, content)
}

// GetContentByID retrieves a content block by its ID.
// @Summary Get a content block by ID
// @Description Retrieve a content block by its unique identifier.
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} dto.ContentResponse "Content details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contents/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetContentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	content, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get content by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Content retrieved successfully")

	response.WithJSON(w, http.StatusOK, content)
}

// UpdateContent updates an existing content block by its ID.
// @Summary Update a content block by ID
// @Description Update the details of an existing content block.
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Param request body dto.UpdateContentRequest true "Update Content Request"
// @Success 200 {object} response.Message "Content updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contents/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateContent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateContentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update content")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Content updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Content updated successfully")
}

// DeleteContent deletes a content block by its ID.
// @Summary Delete a content block by ID
// @Description Delete a content block using its unique identifier.
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} response.Message "Content deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contents/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteContent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete content")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Content deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Content deleted successfully")
}
