//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"pousada/config"
	"pousada/infras/jwt"
	"pousada/infras/kafka"
	"pousada/infras/otel"
	"pousada/infras/payment"
	"pousada/infras/postgres"
	"pousada/infras/redis"
	"pousada/infras/s3"
	"pousada/permissions"
	"pousada/shared/cache"
	"pousada/transport/http"
	"pousada/transport/http/middleware"
	"pousada/transport/http/router"

	contentRepository "pousada/internal/domains/content/repository"
	contentService "pousada/internal/domains/content/service"
	galleryRepository "pousada/internal/domains/gallery/repository"
	galleryService "pousada/internal/domains/gallery/service"
	reservationRepository "pousada/internal/domains/reservation/repository"
	reservationService "pousada/internal/domains/reservation/service"
	reviewRepository "pousada/internal/domains/review/repository"
	reviewService "pousada/internal/domains/review/service"
	roomRepository "pousada/internal/domains/room/repository"
	roomService "pousada/internal/domains/room/service"
	userRepository "pousada/internal/domains/user/repository"
	userService "pousada/internal/domains/user/service"

	authService "pousada/internal/domains/auth/service"

	authHandler "pousada/internal/handlers/auth"
	contentHandler "pousada/internal/handlers/content"
	galleryHandler "pousada/internal/handlers/gallery"
	healthHandler "pousada/internal/handlers/health"
	reservationHandler "pousada/internal/handlers/reservation"
	reviewHandler "pousada/internal/handlers/review"
	roomHandler "pousada/internal/handlers/room"
	userHandler "pousada/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	payment.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	userService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var galleryDomain = wire.NewSet(
	galleryRepository.New,
	galleryService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var contentDomain = wire.NewSet(
	contentRepository.New,
	contentService.New,
)

var domains = wire.NewSet(
	authDomain,
	roomDomain,
	reservationDomain,
	galleryDomain,
	reviewDomain,
	contentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	reservationHandler.New,
	galleryHandler.New,
	reviewHandler.New,
	contentHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
