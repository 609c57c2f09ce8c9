package mcp

import (
	"database/sql"
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	mindlog "github.com/unowned-ai/mindlog/pkg"
	pkgdb "github.com/unowned-ai/mindlog/pkg/db"
	"github.com/unowned-ai/mindlog/pkg/utils"
)

// Options configures NewMindlogMCPServer.
type Options struct {
	DBPath         string
	WAL            bool
	Sync           string
	DefaultJournal string
	Logger         *zap.Logger
}

type MindlogMCPServer struct {
	mcpServer *server.MCPServer
	db        *sql.DB
	logger    *zap.Logger
	DbPath    string
}

// NewMindlogMCPServer opens (and if needed initialises) the journal database
// and registers every tool.
func NewMindlogMCPServer(opts Options) (*MindlogMCPServer, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	dbPath, err := utils.ResolveAndEnsureDBPath(opts.DBPath)
	if err != nil {
		return nil, err
	}

	s := server.NewMCPServer(
		"mindlog",
		mindlog.Version,
		server.WithResourceCapabilities(true, true),
		server.WithLogging(),
		server.WithRecovery(),
	)

	dbConn, err := pkgdb.OpenDBConnection(dbPath, opts.WAL, opts.Sync)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := pkgdb.UpgradeDB(dbConn, dbPath, pkgdb.TargetSchemaVersion, logger); err != nil {
		dbConn.Close()
		return nil, fmt.Errorf("failed to initialize/upgrade database schema for '%s': %w", dbPath, err)
	}

	RegisterTools(s, &Tools{
		DB:             dbConn,
		DefaultJournal: opts.DefaultJournal,
		Logger:         logger.Named("tools"),
	})

	return &MindlogMCPServer{
		mcpServer: s,
		db:        dbConn,
		logger:    logger,
		DbPath:    dbPath,
	}, nil
}

// Start runs the stdio event loop.
func (s *MindlogMCPServer) Start() error {
	s.logger.Info("serving MCP over stdio", zap.String("db", s.DbPath))
	return server.ServeStdio(s.mcpServer)
}

func (s *MindlogMCPServer) DB() *sql.DB {
	return s.db
}

// MCPRawServer exposes the raw mcp-go server.
func (s *MindlogMCPServer) MCPRawServer() *server.MCPServer {
	return s.mcpServer
}

// Close checkpoints the WAL and closes the database.
func (s *MindlogMCPServer) Close() error {
	if s.db == nil {
		return nil
	}
	if _, err := s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE);"); err != nil {
		s.logger.Warn("WAL checkpoint failed during close", zap.Error(err))
	}
	return s.db.Close()
}
