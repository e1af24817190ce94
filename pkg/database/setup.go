package database

import (
	_ "embed"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

//go:embed schema.sql
var schemaSQL string

// Setup creates the catalog tables from the embedded schema. The schema is
// executed statement by statement so a failure reports which part broke.
func Setup(db *gorm.DB) error {
	for _, statement := range splitStatements(schemaSQL) {
		if err := db.Exec(statement).Error; err != nil {
			return fmt.Errorf("schema setup failed: %w", err)
		}
	}
	return nil
}

// splitStatements breaks a schema file into individual SQL statements.
func splitStatements(schema string) []string {
	var statements []string
	for _, part := range strings.Split(schema, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		statements = append(statements, strings.TrimSpace(part)+";")
	}
	return statements
}
