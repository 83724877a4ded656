package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"

	_ "github.com/lib/pq"

	"github.com/vncsmyrnk/polls/internal/config"
)

func main() {
	down := flag.Bool("down", false, "apply the down migration instead of the up one")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("a migration name is required.")
	}
	migrationName := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.DBConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	direction := "up"
	if *down {
		direction = "down"
	}

	basePath := filepath.Join(".", "internal", "adapters", "repository", "postgres", "migrations")
	fileContent, err := migrationFileContent(basePath, migrationName, direction)
	if err != nil {
		log.Fatal(err)
	}

	if _, err := db.Exec(string(fileContent)); err != nil {
		log.Fatalf("Failed to execute SQL file: %v", err)
	}

	fmt.Printf("Migration %s (%s) executed successfully.\n", migrationName, direction)
}

func migrationFileContent(basePath, migrationName, direction string) ([]byte, error) {
	fileName, err := migrationFileName(basePath, migrationName, direction)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(basePath, fileName))
}

func migrationFileName(basePath, migrationName, direction string) (string, error) {
	pattern := fmt.Sprintf(`^\d+_%s\.%s\.sql$`, regexp.QuoteMeta(migrationName), direction)
	regex, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("invalid migration name: %w", err)
	}

	files, err := os.ReadDir(basePath)
	if err != nil {
		return "", fmt.Errorf("failed to read migrations directory: %w", err)
	}
	for _, f := range files {
		if !f.IsDir() && regex.MatchString(f.Name()) {
			return f.Name(), nil
		}
	}

	return "", fmt.Errorf("migration file not found: %s (%s)", migrationName, direction)
}
