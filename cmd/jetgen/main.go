package main

import (
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/go-jet/jet/v2/generator/metadata"
	"github.com/go-jet/jet/v2/generator/postgres"
	"github.com/go-jet/jet/v2/generator/template"
	postgres2 "github.com/go-jet/jet/v2/postgres"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	Schema      string `env:"DB_SCHEMA" envDefault:"public"`
	Path        string `env:"GEN_PATH" envDefault:"./internal/platform/storage/gen"`
}

const migrationsTable = "schema_migrations"

func main() {
	logger := zerolog.New(os.Stdout)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("can't parse config")
	}

	if err := postgres.GenerateDSN(cfg.DatabaseURL, cfg.Schema, cfg.Path, modelTemplate()); err != nil {
		logger.Fatal().Err(err).Msg("can't generate models")
	}
	logger.Info().Str("path", cfg.Path).Msg("models generated")
}

// modelTemplate maps numeric columns to decimal.Decimal so prices are never read through float64.
func modelTemplate() template.Template {
	return template.Default(postgres2.Dialect).
		UseSchema(func(schema metadata.Schema) template.Schema {
			return template.DefaultSchema(schema).
				UseModel(template.DefaultModel().
					UseTable(func(table metadata.Table) template.TableModel {
						if table.Name == migrationsTable {
							return template.TableModel{Skip: true}
						}
						return template.DefaultTableModel(table).UseField(modelField)
					}),
				).
				UseSQLBuilder(template.DefaultSQLBuilder().
					UseTable(func(table metadata.Table) template.TableSQLBuilder {
						if table.Name == migrationsTable {
							return template.TableSQLBuilder{Skip: true}
						}
						return template.DefaultTableSQLBuilder(table)
					}),
				)
		})
}

func modelField(column metadata.Column) template.TableModelField {
	field := template.DefaultTableModelField(column)
	if column.DataType.Name != "numeric" {
		return field
	}
	if column.IsNullable {
		return field.UseType(template.NewType(&decimal.Decimal{}))
	}
	return field.UseType(template.NewType(decimal.Decimal{}))
}
