// migrate aplica en orden los archivos migrations/*.sql sobre la base de datos
// configurada (DATABASE_URL o DB_HOST, DB_PORT, etc.).
//
// Uso: go run ./cmd/migrate [-dir migrations]
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"sort"

	"github.com/leonz04/pruebaTecnicaBack/internal/infrastructure/postgres"
	"github.com/leonz04/pruebaTecnicaBack/pkg/config"
	"github.com/leonz04/pruebaTecnicaBack/pkg/logger"
)

func main() {
	dir := flag.String("dir", "migrations", "directorio con los archivos .sql")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	files, err := filepath.Glob(filepath.Join(*dir, "*.sql"))
	if err != nil {
		log.Fatal().Err(err).Msg("listar migraciones")
	}
	if len(files) == 0 {
		log.Fatal().Str("dir", *dir).Msg("no hay migraciones que aplicar")
	}
	sort.Strings(files)

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	for _, file := range files {
		sql, err := os.ReadFile(file)
		if err != nil {
			log.Fatal().Err(err).Str("file", file).Msg("leer migración")
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			log.Fatal().Err(err).Str("file", file).Msg("aplicar migración")
		}
		log.Info().Str("file", filepath.Base(file)).Msg("migración aplicada")
	}
	log.Info().Int("total", len(files)).Msg("migraciones completadas")
}
