package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"pousada/config"
	"pousada/infras/otel"
	"pousada/internal/domains/content/model"
	"pousada/internal/domains/content/model/dto"
	"pousada/internal/domains/content/repository"
	"pousada/shared"
	"pousada/shared/cache"
	"pousada/shared/constant"
	gDto "pousada/shared/dto"
	"pousada/shared/failure"
)

const (
	cacheGetContent    = "content:get"
	cacheGetAllContent = "content:gets"
)

type Content interface {
	Create(ctx context.Context, req dto.CreateContentRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetContentsResponse, error)
	Get(ctx context.Context, id string) (dto.ContentResponse, error)
	GetBySlug(ctx context.Context, slug string) (dto.ContentResponse, error)
	Update(ctx context.Context, req dto.UpdateContentRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Content
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Content, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Content {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateContentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, filterBySlug(req.Slug))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if content exists")

		return fmt.Errorf("failed to check if content exists: %w", err)
	}

	if exist {
		return failure.Conflict("content with this slug already exists") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create content")

		return fmt.Errorf("failed to create content: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetContentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllContent, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for contents")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count contents")

		return res, fmt.Errorf("failed to count contents: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contents")

		return res, fmt.Errorf("failed to get contents: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save contents to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ContentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	content, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get content")

		return res, fmt.Errorf("failed to get content: %w", err)
	}

	if content.ID == constant.Empty {
		return res, failure.NotFound("content not found") // nolint:wrapcheck
	}

	res.FromModel(content)

	return res, nil
}

// GetBySlug serves the public pages, so only published blocks are visible and
// results are cached per slug.
func (s *serviceImpl) GetBySlug(ctx context.Context, slug string) (res dto.ContentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBySlug")
	defer scope.End()
	defer scope.TraceIfError(nil)

	cacheKey := shared.BuildCacheKey(cacheGetContent, slug)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for content")

		return res, nil
	}

	content, err := s.repo.Get(ctx, filterBySlug(slug))
	if err != nil {
		log.Error().Err(err).Msg("failed to get content")

		return res, fmt.Errorf("failed to get content: %w", err)
	}

	if content.ID == constant.Empty || !content.Published {
		return res, failure.NotFound("content not found") // nolint:wrapcheck
	}

	res.FromModel(content)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save content to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateContentRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateContentRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if content exists")

		return fmt.Errorf("failed to check if content exists: %w", err)
	}

	if !exist {
		log.Error().Msg("content not found")

		return failure.NotFound("content not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update content")

		return fmt.Errorf("failed to update content: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if content exists")

		return fmt.Errorf("failed to check if content exists: %w", err)
	}

	if !exist {
		log.Error().Msg("content not found")

		return failure.NotFound("content not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete content")

		return fmt.Errorf("failed to delete content: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func filterBySlug(slug string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldSlug,
				Operator: gDto.FilterOperatorEq,
				Value:    slug,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetContent)
		shared.InvalidateCaches(c, s.cache, cacheGetAllContent)
	}()
}
