package tenantforum

import (
	"bufio"
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// MigrationFiles contains all SQL migration files embedded in the binary,
// one directory per dialect (mysql, postgres, sqlite3).
//
// The files use {{topic}} and {{response}} placeholders for the table names.
// Migrate renders and applies them; users of other migration tools can read
// them directly and substitute the names themselves.
//
//go:embed migrations/*/*.sql
var MigrationFiles embed.FS

// Migrate creates the topic and response tables for tables on db.
//
// The driver selects the dialect: "mysql", "postgres" or "sqlite3".
// Statements are idempotent, so Migrate can run on every start.
func Migrate(ctx context.Context, db *sql.DB, driver string, tables Tables) error {
	if err := tables.Validate(); err != nil {
		return err
	}

	statements, err := MigrationStatements(driver, tables)
	if err != nil {
		return err
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return NewErrorWithCause(ErrCodeDatabase, "failed to apply migration", err)
		}
	}
	return nil
}

// MigrationStatements returns the rendered migration statements for driver,
// in the order they must be applied.
func MigrationStatements(driver string, tables Tables) ([]string, error) {
	dir, err := migrationDialect(driver)
	if err != nil {
		return nil, err
	}

	files, err := fs.Glob(MigrationFiles, path.Join("migrations", dir, "*.sql"))
	if err != nil {
		return nil, NewErrorWithCause(ErrCodeConfiguration, "failed to list migrations", err)
	}

	replacer := strings.NewReplacer(
		"{{topic}}", tables.Topic(),
		"{{response}}", tables.Response(),
	)

	var statements []string
	for _, name := range files {
		data, err := MigrationFiles.ReadFile(name)
		if err != nil {
			return nil, NewErrorWithCause(ErrCodeConfiguration, "failed to read migration "+name, err)
		}
		statements = append(statements, splitStatements(replacer.Replace(string(data)))...)
	}
	return statements, nil
}

func migrationDialect(driver string) (string, error) {
	switch driver {
	case "mysql":
		return "mysql", nil
	case "postgres", "pgx":
		return "postgres", nil
	case "sqlite3", "sqlite":
		return "sqlite3", nil
	default:
		return "", NewError(ErrCodeConfiguration, fmt.Sprintf("unsupported database driver %q", driver))
	}
}

// splitStatements splits a script on semicolons, dropping comment lines.
// The migration files never use semicolons inside statements.
func splitStatements(script string) []string {
	var b strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(script))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	var statements []string
	for _, part := range strings.Split(b.String(), ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}
