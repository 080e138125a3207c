// Package main runs the stats MCP server over stdio for one user.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/gymtrack/internal/config"
	"github.com/2beens/gymtrack/internal/db"
	"github.com/2beens/gymtrack/internal/logging"
	"github.com/2beens/gymtrack/internal/stats"
	statsmcp "github.com/2beens/gymtrack/internal/stats/mcp"
	"github.com/2beens/gymtrack/internal/users"
	"github.com/2beens/gymtrack/internal/workouts"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	userIDFlag := flag.String("user", "", "ID of the user whose stats are served")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// stdout carries the MCP protocol
	logging.Setup(logging.LoggerSetupParams{
		LogFileName: cfg.LogsPath,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})
	if cfg.LogsPath == "" {
		log.SetOutput(os.Stderr)
	}

	userID, err := uuid.Parse(*userIDFlag)
	if err != nil {
		log.Fatalf("invalid -user [%s]: %v", *userIDFlag, err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     os.Getenv("GYMTRACK_POSTGRES_PASS"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	statsService := stats.NewService(
		stats.NewRepo(dbPool),
		users.NewRepo(dbPool),
		nil,
		cfg.Location(),
		cfg.StatsMaxWindowDays,
	)
	workoutsService := workouts.NewService(workouts.NewRepo(dbPool), nil, nil, cfg.Location())

	server := statsmcp.NewServer(userID, statsService, workoutsService, "1.0.0")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Errorf("mcp server: %v", err)
	}
}
