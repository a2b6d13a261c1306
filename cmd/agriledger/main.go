// Package main runs the agriledger node: the mining scheduler plus a thin
// HTTP surface over the node operations.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/ShahzaibAhmad05/AgriBlock-blockchain/internal/ledger"
	"github.com/ShahzaibAhmad05/AgriBlock-blockchain/internal/metrics"
	"github.com/ShahzaibAhmad05/AgriBlock-blockchain/internal/miner"
	"github.com/ShahzaibAhmad05/AgriBlock-blockchain/internal/node"
	"github.com/ShahzaibAhmad05/AgriBlock-blockchain/pkg/safe"
)

var config struct {
	Addr       string `long:"addr" env:"AGRILEDGER_ADDR" description:"http listen address" default:":8080"`
	Difficulty int    `long:"difficulty" env:"AGRILEDGER_DIFFICULTY" description:"required leading zero bits for mined blocks" default:"16"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	difficulty, err := safe.Uint32(config.Difficulty)
	if err != nil {
		logger.Fatal("Invalid difficulty", zap.Error(err))
	}

	chain := ledger.New(difficulty)
	pool := ledger.NewTransactionPool()

	m, err := miner.New(chain, pool, metrics.NewMiner(), logger)
	if err != nil {
		logger.Fatal("Build miner", zap.Error(err))
	}
	svc, err := node.NewService(chain, pool, m, metrics.NewNode(), logger)
	if err != nil {
		logger.Fatal("Build node service", zap.Error(err))
	}

	go func() {
		if runErr := svc.Run(ctx); runErr != nil && !errors.Is(runErr, context.Canceled) {
			logger.Error("Mining scheduler stopped", zap.Error(runErr))
		}
	}()

	mux := http.NewServeMux()
	mux.HandleFunc("/transactions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req node.SubmitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := svc.SubmitTransaction(req); err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	})
	mux.HandleFunc("/chain", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(svc.GetChain()); err != nil {
			logger.Error("Encode chain", zap.Error(err))
		}
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.Addr), zap.Uint32("difficulty", difficulty))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
