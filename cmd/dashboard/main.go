package main

import (
	"flag"
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/osr-alliance/backend-svc-dashboard/api"
	"github.com/osr-alliance/backend-svc-dashboard/config"
	"github.com/osr-alliance/backend-svc-dashboard/dashboard"
	"github.com/osr-alliance/backend-svc-dashboard/store"
	"github.com/osr-alliance/backend-svc-dashboard/todo"
)

func main() {
	configPath := flag.String("config", "dashboard.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("loading config")
	}

	if lvl, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		logrus.SetLevel(lvl)
	}

	db, rdb := createConns(cfg)

	leadStore := store.New(&store.Config{
		ReadOnlyDbConn:  db,
		WriteOnlyDbConn: db,
		Redis:           rdb,
		Debugger:        cfg.Logging.StoreDebug,
	})

	// Reminders start unrequested when the host supports them; on this
	// deployment that's usually off and the gate pins itself to denied.
	gate := dashboard.NewReminderGate(cfg.Notifications.Supported, dashboard.PermissionUnrequested, nil)
	gate.Reset()

	h := api.New(&api.Config{
		Store: leadStore,
		Todos: todo.NewStore(todo.NewRedisKV(rdb)),
		Gate:  gate,
	})

	router := mux.NewRouter()
	h.Register(router)

	srv := &http.Server{
		Handler: router,
		Addr:    cfg.HTTP.Addr,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: cfg.HTTP.WriteTimeout,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
	}

	logrus.WithField("addr", cfg.HTTP.Addr).Info("dashboard listening")
	logrus.Fatal(srv.ListenAndServe())
}

func createConns(cfg *config.Config) (*sqlx.DB, *redis.Client) {
	db, err := sqlx.Connect("postgres", cfg.Postgres.DSN())
	if err != nil {
		logrus.WithError(err).Fatal("connecting to postgres")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	return db, rdb
}
