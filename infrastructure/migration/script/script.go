package main

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/sustain-inventory/inventory-api/internal/config"
	"github.com/sustain-inventory/inventory-api/internal/domain"
	"github.com/sustain-inventory/inventory-api/internal/usecases/selling"
	"github.com/sustain-inventory/inventory-api/pkg/log"
	"github.com/sustain-inventory/inventory-api/pkg/utils"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS items (
		id        TEXT PRIMARY KEY,
		name      TEXT NOT NULL,
		category  TEXT NOT NULL DEFAULT '',
		condition TEXT NOT NULL DEFAULT '',
		price     NUMERIC(12,2) NOT NULL DEFAULT 0,
		status    TEXT NOT NULL DEFAULT 'In Stock',
		timestamp BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_items_status ON items (status)`,
	// Vendas antigas podem não ter data, categoria ou valor numérico
	`CREATE TABLE IF NOT EXISTS sales (
		id        TEXT PRIMARY KEY,
		amount    TEXT,
		timestamp BIGINT,
		date      TEXT,
		category  TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS categories (id TEXT PRIMARY KEY, name TEXT NOT NULL UNIQUE)`,
	`CREATE TABLE IF NOT EXISTS conditions (id TEXT PRIMARY KEY, name TEXT NOT NULL UNIQUE)`,
	`CREATE TABLE IF NOT EXISTS statuses (id TEXT PRIMARY KEY, name TEXT NOT NULL UNIQUE)`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id      TEXT PRIMARY KEY,
		name    TEXT NOT NULL,
		phone   TEXT NOT NULL UNIQUE,
		email   TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id              TEXT PRIMARY KEY,
		item_id         TEXT NOT NULL REFERENCES items (id) ON DELETE CASCADE,
		item_name       TEXT NOT NULL,
		reserved_by     TEXT NOT NULL,
		phone           TEXT NOT NULL DEFAULT '',
		address         TEXT NOT NULL DEFAULT '',
		delivery_date   BIGINT,
		notes           TEXT NOT NULL DEFAULT '',
		delivery_status TEXT NOT NULL DEFAULT 'Pending',
		delivered_at    BIGINT,
		timestamp       BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_item_id ON reservations (item_id)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'staff',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS forecast_snapshots (
		id           TEXT PRIMARY KEY,
		generated_at TIMESTAMPTZ NOT NULL,
		dates        JSONB NOT NULL,
		totals       JSONB NOT NULL,
		result       JSONB NOT NULL,
		degraded     BOOLEAN NOT NULL DEFAULT false
	)`,
}

var defaultCatalog = map[domain.CatalogKind][]string{
	domain.CatalogCategories: selling.SeedCategories,
	domain.CatalogConditions: {"Like New", "Good", "Fair", "Poor"},
	domain.CatalogStatuses: {
		string(domain.ItemStatusInStock),
		string(domain.ItemStatusReserved),
		string(domain.ItemStatusSold),
		string(domain.ItemStatusMissing),
	},
}

func createSchema(ctx context.Context, tx *sql.Tx) {
	log.L.Infof("Criando %d objetos do schema...", len(schema))
	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			log.L.WithError(err).Fatalf("ERRO ao executar: %s", firstLine(stmt))
		}
	}
}

func insertCatalog(ctx context.Context, tx *sql.Tx) {
	for kind, names := range defaultCatalog {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO `+string(kind)+` (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`)
		if err != nil {
			log.L.WithError(err).Fatalf("ERRO ao preparar statement para %s", kind)
		}

		inserted := 0
		for _, name := range names {
			id, err := utils.GenerateID()
			if err != nil {
				log.L.WithError(err).Fatal("ERRO ao gerar id")
			}
			res, err := stmt.ExecContext(ctx, id, name)
			if err != nil {
				log.L.WithError(err).Warnf("ERRO ao inserir %s em %s", name, kind)
				continue
			}
			if n, _ := res.RowsAffected(); n > 0 {
				inserted++
			}
		}
		stmt.Close()

		log.L.WithFields(log.Fields{"catalog": kind, "inserted": inserted, "total": len(names)}).Info("Catálogo carregado")
	}
}

// insertAdmin cria o primeiro administrador quando ADMIN_EMAIL e ADMIN_PASSWORD estão definidos
func insertAdmin(ctx context.Context, tx *sql.Tx) {
	email := strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.L.Info("ADMIN_EMAIL/ADMIN_PASSWORD não definidos, nenhum administrador criado")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.L.WithError(err).Fatal("ERRO ao gerar hash da senha")
	}
	id, err := utils.GenerateID()
	if err != nil {
		log.L.WithError(err).Fatal("ERRO ao gerar id")
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, role) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (email) DO NOTHING`,
		id, "Admin", email, string(hash), domain.RoleAdmin,
	)
	if err != nil {
		log.L.WithError(err).Fatal("ERRO ao inserir administrador")
	}
	log.L.WithField("email", email).Info("Administrador garantido")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func main() {
	log.L.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.WithError(err).Fatal("ERRO ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.L.WithError(err).Fatal("ERRO ao abrir conexão")
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.L.WithError(err).Fatal("ERRO ao conectar no banco")
	}

	startTime := time.Now()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.L.WithError(err).Fatal("ERRO ao iniciar transação")
	}

	createSchema(ctx, tx)
	insertCatalog(ctx, tx)
	insertAdmin(ctx, tx)

	if err := tx.Commit(); err != nil {
		log.L.WithError(err).Error("ERRO ao confirmar transação")
		if err := tx.Rollback(); err != nil {
			log.L.WithError(err).Fatal("ERRO ao reverter transação")
		}
		os.Exit(1)
	}

	log.L.Infof("Migração concluída em %v!", time.Since(startTime))
}
