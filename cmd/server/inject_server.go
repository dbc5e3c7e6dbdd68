package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/wire"
	"github.com/rs/cors"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/idelsangithub/business-logic-service/handler/api"
	"github.com/idelsangithub/business-logic-service/handler/hc"
	"github.com/idelsangithub/business-logic-service/handler/metrics"
)

var serverSet = wire.NewSet(
	api.New,
	provideServer,
)

func provideServer(v *viper.Viper, apiHandler *api.Server) *http.Server {
	v.SetDefault("api.rate_rps", 50)
	v.SetDefault("api.rate_burst", 100)

	m := chi.NewMux()
	m.Use(middleware.RealIP)
	m.Use(middleware.Logger)
	m.Use(middleware.Recoverer)
	m.Use(cors.AllowAll().Handler)
	m.Use(metrics.Instrument)
	m.Use(api.RateLimit(rate.Limit(v.GetFloat64("api.rate_rps")), v.GetInt("api.rate_burst")))

	m.Mount("/api", apiHandler.Handler())
	m.Mount("/hc", hc.Handler(version))
	m.Handle("/metrics", metrics.Handler())

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", opt.port),
		Handler: m,
	}
}
