// seed carga consultores desde un roster YAML en la base configurada (STORAGE_DRIVER=postgres).
//
// Uso: go run ./cmd/seed [ruta/roster.yaml]
// Sin argumento usa el roster de ejemplo embebido. Los emails que ya existen se omiten,
// así que se puede ejecutar varias veces.
package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/Onboarding-api/internal/application/dto"
	"github.com/jhoicas/Onboarding-api/internal/application/onboarding"
	"github.com/jhoicas/Onboarding-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Onboarding-api/pkg/config"
	"github.com/jhoicas/Onboarding-api/pkg/logger"
)

//go:embed sample_roster.yaml
var sampleRoster []byte

type roster struct {
	Consultants []dto.CreateConsultantRequest `yaml:"consultants"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	raw := sampleRoster
	if len(os.Args) > 1 {
		raw, err = os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer roster: %v\n", err)
			os.Exit(1)
		}
	}
	r, err := parseRoster(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Roster inválido: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.Migrate(pool, log); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	uc := onboarding.NewConsultantUseCase(postgres.NewConsultantRepository(pool), postgres.NewTxRunner(pool), log)
	added, skipped, err := seed(ctx, uc, r)
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}
	fmt.Printf("Seed completo: %d agregados, %d omitidos (email existente)\n", added, skipped)
}

func parseRoster(raw []byte) (*roster, error) {
	var r roster
	if err := yaml.Unmarshal(raw, &r); err != nil {
		return nil, err
	}
	if len(r.Consultants) == 0 {
		return nil, fmt.Errorf("sin consultores")
	}
	return &r, nil
}

// seed agrega los consultores cuyo email aún no está registrado.
func seed(ctx context.Context, uc *onboarding.ConsultantUseCase, r *roster) (added, skipped int, err error) {
	existing, err := uc.List(ctx)
	if err != nil {
		return 0, 0, err
	}
	emails := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		emails[strings.ToLower(c.Email)] = struct{}{}
	}
	for _, in := range r.Consultants {
		key := strings.ToLower(strings.TrimSpace(in.Email))
		if _, ok := emails[key]; ok {
			skipped++
			continue
		}
		if _, err := uc.Add(ctx, in); err != nil {
			return added, skipped, fmt.Errorf("%s: %w", in.Name, err)
		}
		emails[key] = struct{}{}
		added++
	}
	return added, skipped, nil
}
