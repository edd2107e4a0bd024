package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"alojamento/internal/config"
	"alojamento/internal/fixture"
	"alojamento/internal/pkg/logger"
	"alojamento/internal/registry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config:", err)
	}

	appLogger, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.Development(),
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		log.Fatal("logger:", err)
	}
	defer func() { _ = appLogger.Sync() }()

	ctx := logger.WithLogger(context.Background(), appLogger)
	reg := registry.New(registry.WithLogger(appLogger))

	if err := run(ctx, cfg.SeedFile, reg); err != nil {
		appLogger.Errorw("seed failed", "file", cfg.SeedFile, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, path string, reg *registry.Registry) error {
	fh, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fh.Close()

	f, err := fixture.Load(fh)
	if err != nil {
		return err
	}
	res, err := fixture.Apply(ctx, reg, f)
	if err != nil {
		return err
	}

	fmt.Println("== Clients ==")
	for _, c := range reg.Clients() {
		fmt.Println(c)
	}

	fmt.Println("\n== Accommodations ==")
	for _, a := range reg.Accommodations() {
		fmt.Println(a)
	}

	fmt.Println("\n== Reservations ==")
	for _, r := range reg.Reservations() {
		line, err := reg.Describe(r.ID)
		if err != nil {
			return err
		}
		fmt.Println(line)
	}

	for _, rej := range res.Rejected {
		fmt.Printf("\ndate change #%d for %q rejected: dates overlap\n", rej.Index, rej.Reservation)
	}
	return nil
}
