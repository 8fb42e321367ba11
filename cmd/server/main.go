package main

import (
	"fmt"
	"os"

	"github.com/ardanlabs/conf"
	"github.com/rs/zerolog"

	"presensi/backend/foundation/web"
	"presensi/backend/internal/commands"
	"presensi/backend/internal/pkg/cache"
	"presensi/backend/internal/pkg/config"
	"presensi/backend/internal/pkg/repository/postgresql"
	"presensi/backend/internal/router"

	"presensi/backend/internal/auth"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := run(log); err != nil {
		if err != commands.ErrHelp {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}
}

func run(log zerolog.Logger) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	// Environment variables and flags override the yaml values.
	args := os.Args[1:]
	migrateOnly := len(args) > 0 && args[0] == "migrate"
	if migrateOnly {
		args = args[1:]
	}

	if err := conf.Parse(args, "PRESENSI", cfg); err != nil {
		if err == conf.ErrHelpWanted {
			usage, uerr := conf.Usage("PRESENSI", cfg)
			if uerr != nil {
				return uerr
			}
			fmt.Println(usage)
			return commands.ErrHelp
		}
		return err
	}

	postgresDB := postgresql.NewDatabase(cfg.DSN(), false)
	defer postgresDB.Close()

	commands.MigrateUP(postgresDB)
	if migrateOnly {
		log.Info().Msg("migrations applied")
		return nil
	}

	redisDB := cache.NewRedisClient(cfg.RedisAddr)
	defer redisDB.Close()

	authenticator := auth.New(cfg.JWTKey)

	app := web.NewApp(log)
	r := router.NewRouter(app, postgresDB, redisDB, authenticator, cfg, log)

	log.Info().Str("port", cfg.HTTPPort).Msg("server starting")
	return r.Init()
}
