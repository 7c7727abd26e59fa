package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/mikiasgoitom/likeboard/internal/app"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/config"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/logger"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cliApp := &cli.App{
		Name:   "likeboard",
		Usage:  "like counter service",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start http server",
				Action: serve,
			},
			{
				Name:   "likes",
				Usage:  "print the current like total",
				Action: printLikes,
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.Fatalf("likeboard: %v", err)
	}
}

func setup(ctx context.Context) (*app.App, *logger.ZapLogger, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}
	appLogger, err := logger.NewZapLogger(cfg.GetLogLevel())
	if err != nil {
		return nil, nil, err
	}
	a, err := app.New(ctx, cfg, appLogger)
	if err != nil {
		_ = appLogger.Sync()
		return nil, nil, err
	}
	return a, appLogger, nil
}

func serve(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	a, appLogger, err := setup(ctx)
	if err != nil {
		return err
	}
	defer appLogger.Sync()
	defer a.Close()

	return a.Run(ctx)
}

func printLikes(c *cli.Context) error {
	a, appLogger, err := setup(c.Context)
	if err != nil {
		return err
	}
	defer appLogger.Sync()
	defer a.Close()

	counter, err := a.LikeUsecase().GetLikes(c.Context)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, counter.TotalLikes)
	return nil
}
