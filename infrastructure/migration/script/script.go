package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/install-growth-api/infrastructure/database/postgres"
	"github.com/vfg2006/install-growth-api/internal/config"
	"github.com/vfg2006/install-growth-api/pkg/log"
)

const installReportsDDL = `
CREATE TABLE IF NOT EXISTS install_reports (
	id          VARCHAR(12) PRIMARY KEY,
	report_date DATE NOT NULL UNIQUE,
	from_date   DATE NOT NULL,
	to_date     DATE NOT NULL,
	breakdown   JSONB NOT NULL,
	growth      JSONB NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// sourceTable reúne as colunas de uma tabela diária vindas do registro
type sourceTable struct {
	name           string
	dateColumn     string
	campaignColumn string
	columns        map[string]string // coluna -> tipo
}

func main() {
	dryRun := flag.Bool("dry-run", false, "apenas imprime os comandos DDL")
	flag.Parse()

	log.Setup("info")
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	statements := buildStatements(cfg.Registry)

	if *dryRun {
		for _, stmt := range statements {
			fmt.Println(strings.TrimSpace(stmt) + ";")
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("erro ao executar DDL: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("Migração falhou, transação desfeita")
	}

	logrus.WithFields(logrus.Fields{
		"statements": len(statements),
		"duration":   time.Since(startTime).String(),
	}).Info("Migração concluída com sucesso")
}

// buildStatements gera o DDL das tabelas de fontes e famílias do registro e da tabela de relatórios
func buildStatements(registry *config.Registry) []string {
	tables := make(map[string]*sourceTable)
	table := func(name, dateColumn string) *sourceTable {
		t, ok := tables[name]
		if !ok {
			t = &sourceTable{name: name, dateColumn: dateColumn, columns: make(map[string]string)}
			tables[name] = t
		}
		return t
	}

	for _, ch := range registry.Channels.Channels() {
		source, err := registry.Channels.Lookup(ch)
		if err != nil {
			continue
		}
		t := table(source.Table, source.DateColumn)
		if source.CampaignColumn != "" {
			t.campaignColumn = source.CampaignColumn
		}
		for _, c := range source.Columns {
			t.columns[c.Column] = "BIGINT"
		}
	}

	for _, name := range registry.Families.Names() {
		family, err := registry.Families.Lookup(name)
		if err != nil {
			continue
		}
		t := table(family.Table, family.DateColumn)
		for _, m := range family.Metrics {
			t.columns[m.Column] = "NUMERIC(18,4)"
		}
	}

	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	statements := make([]string, 0, len(names)*2+1)
	for _, name := range names {
		t := tables[name]
		statements = append(statements, t.createStatement(), t.indexStatement())
	}
	return append(statements, installReportsDDL)
}

func (t *sourceTable) createStatement() string {
	columns := make([]string, 0, len(t.columns))
	for c := range t.columns {
		columns = append(columns, c)
	}
	sort.Strings(columns)

	defs := []string{fmt.Sprintf("%s DATE NOT NULL", pq.QuoteIdentifier(t.dateColumn))}
	if t.campaignColumn != "" {
		defs = append(defs, fmt.Sprintf("%s TEXT", pq.QuoteIdentifier(t.campaignColumn)))
	}
	for _, c := range columns {
		defs = append(defs, fmt.Sprintf("%s %s NOT NULL DEFAULT 0", pq.QuoteIdentifier(c), t.columns[c]))
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)",
		pq.QuoteIdentifier(t.name), strings.Join(defs, ",\n\t"))
}

func (t *sourceTable) indexStatement() string {
	return fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)",
		pq.QuoteIdentifier(t.name+"_"+t.dateColumn+"_idx"),
		pq.QuoteIdentifier(t.name),
		pq.QuoteIdentifier(t.dateColumn))
}
