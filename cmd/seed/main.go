// seed crea el usuario administrador por defecto (admin/admin123) cuando la
// tabla de usuarios está vacía. Es idempotente: si ya hay usuarios no hace nada.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"

	"github.com/grocerflow/grocerflow-api/internal/application/auth"
	"github.com/grocerflow/grocerflow-api/internal/infrastructure/postgres"
	"github.com/grocerflow/grocerflow-api/pkg/config"
	"github.com/grocerflow/grocerflow-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	created, err := authUC.EnsureDefaultAdmin()
	if err != nil {
		log.Fatal().Err(err).Msg("bootstrap del admin por defecto")
	}
	if created {
		log.Info().Str("username", auth.DefaultAdminUsername).Msg("usuario admin creado; cambie la contraseña tras el primer login")
		return
	}
	log.Info().Msg("ya existen usuarios, no se creó nada")
}
