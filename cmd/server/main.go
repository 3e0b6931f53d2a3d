package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"

	"github.com/ticklist/ticklist/internal/auth"
	"github.com/ticklist/ticklist/internal/config"
	"github.com/ticklist/ticklist/internal/gate"
	"github.com/ticklist/ticklist/internal/server"
	"github.com/ticklist/ticklist/internal/store"
	"github.com/ticklist/ticklist/internal/todos"
	"github.com/ticklist/ticklist/internal/token"
	"github.com/ticklist/ticklist/internal/users"
)

func main() {
	lgr := glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithLevel(glog.Trace),
		glog.WithName("ticklist"),
		glog.WithAddSource(false),
		glog.WithRichErrorHandler(errors.ToSlogAttributes),
	)

	log := lgr.GetLogger("main")

	cfg, err := config.Load()
	if err != nil {
		log.Error("configuration error", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := store.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := store.InitSchema(ctx, db); err != nil {
		log.Error("schema init failed", "error", err)
		os.Exit(1)
	}

	tokens := token.NewService(
		[]byte(cfg.SigningKey),
		token.WithTTL(cfg.SessionTTL),
		token.WithLogger(lgr.GetLogger("token")),
	)

	requestGate := gate.New(
		gate.NewResolver(tokens),
		gate.WithLogger(lgr.GetLogger("gate")),
	)

	authSvc := auth.NewService(
		auth.NewRepository(db, lgr.GetLogger("auth")),
		tokens,
		lgr.GetLogger("auth"),
	)
	usersSvc := users.NewService(
		users.NewRepository(db, lgr.GetLogger("users")),
		lgr.GetLogger("users"),
	)
	todosSvc := todos.NewService(
		todos.NewRepository(db, lgr.GetLogger("todos")),
		lgr.GetLogger("todos"),
	)

	app := server.New(server.Options{
		Gate:   requestGate,
		Auth:   auth.NewHandler(authSvc, tokens.TTL(), lgr.GetLogger("auth")),
		Users:  users.NewHandler(usersSvc),
		Todos:  todos.NewHandler(todosSvc),
		Logger: lgr.GetLogger("server"),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.Addr(), "env", cfg.Environment)
		errCh <- app.Listen(cfg.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server stopped", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		log.Info("shutting down", "signal", sig.String())
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("shutdown error", "error", err)
			os.Exit(1)
		}
	}
}
