package main

import (
	"database/sql"
	"flag"
	"fmt"

	"marketplace/cmd"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

func main() {
	var migrationsPath string
	var down bool
	flag.StringVar(&migrationsPath, "migrations-path", "", "path to migration files")
	flag.BoolVar(&down, "down", false, "roll back every migration")
	flag.Parse()

	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if migrationsPath == "" {
		migrationsPath = configs.MigrationsPath
	}

	if err := run(configs, migrationsPath, down); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(configs cmd.Config, migrationsPath string, down bool) error {
	m, err := migrate.New("file://"+migrationsPath, configs.MigrateURL())
	if err != nil {
		return errors.Wrap(err, "create migrate instance")
	}
	defer m.Close()

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Info("No migrations to apply")
	case err != nil:
		return errors.Wrap(err, "apply migrations")
	default:
		log.Info("Migrations applied successfully")
	}

	return printTables(configs)
}

func printTables(configs cmd.Config) error {
	db, err := sql.Open("postgres", configs.DSN())
	if err != nil {
		return errors.Wrap(err, "open database")
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name
	`)
	if err != nil {
		return errors.Wrap(err, "query tables")
	}
	defer rows.Close()

	fmt.Println("Current tables in the database:")
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return errors.Wrap(err, "scan table name")
		}
		fmt.Println(" -", tableName)
	}
	return errors.Wrap(rows.Err(), "read tables")
}
