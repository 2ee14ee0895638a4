package main

import (
	"database/sql"
	"os"

	"github.com/kshitij2201/erp-neitem-updated-sub010/app/config"
	"github.com/kshitij2201/erp-neitem-updated-sub010/app/database"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.Info("Applying database schema...")

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	executeSQLFile(db, "schema.sql")

	// Conditional column/index updates on top of the base schema
	if err := database.RunMigrations(db); err != nil {
		logrus.Fatalf("Migrations failed: %v", err)
	}

	logrus.Info("Schema applied successfully")
}

func executeSQLFile(db *sql.DB, filePath string) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		logrus.Fatalf("Failed to read %s: %v", filePath, err)
	}

	if _, err := db.Exec(string(content)); err != nil {
		logrus.Fatalf("Failed to execute %s: %v", filePath, err)
	}
	logrus.Infof("Executed %s", filePath)
}
