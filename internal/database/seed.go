package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/lib/pq"
)

// DefaultUsers is the staff list seeded on every startup.
var DefaultUsers = []string{
	"Andreas Boje",
	"Benjamin Borup",
	"Benjamin Fagerlund",
	"Cathrine Christensen",
	"Cecilie Carstensen",
	"Cecilie Dalsgaard",
	"Christina Løvkvist",
	"Claus DM",
	"Denys Leheta",
	"Emilie Risgaard",
	"Hartvig",
	"Kasper Petersen",
	"Kevin Ravichandran",
	"Lasse Hejgaard",
	"Laura Ladekarl",
	"Mads Churchill",
	"Maj Andersen",
	"Maria Krøgh",
	"Mark Nielsen",
	"Mark Poulsen",
	"Martin DM",
	"Martin Laigaard",
	"Mathias Schaldemose",
	"Michel Nielsen",
	"Natascha Løgstrup",
	"Nicolai Bjerregaard",
	"Nicole-Nathalie",
	"Niels DM",
	"Nikolaj DM",
	"Sara Murray",
	"Silke Hjortshøj",
	"Simon Bødker",
	"Theresa Andersen",
	"Trine Munkholm",
}

// SeedData describes the reference rows that must exist after startup.
type SeedData struct {
	Users      []string
	Projects   []string
	PurgeUsers []string // removed first; their entries cascade away

	// ProjectsEnabled selects the multi-project layout. When false only
	// Projects[0] is inserted, and only into an empty projects table.
	ProjectsEnabled bool
}

// Seed inserts missing users and projects. Existing rows are never
// rewritten, so running it repeatedly leaves the tables unchanged.
func Seed(ctx context.Context, db *sql.DB, data SeedData, log *slog.Logger) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	if err := seedProjects(ctx, tx, data); err != nil {
		return err
	}

	if len(data.PurgeUsers) > 0 {
		res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE name = ANY($1::text[])`, pq.Array(data.PurgeUsers))
		if err != nil {
			return fmt.Errorf("purge legacy users: %w", err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			log.InfoContext(ctx, "purged legacy users", slog.Int64("count", n))
		}
	}

	inserted := 0
	for _, name := range data.Users {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO users (name)
			SELECT $1::text
			WHERE NOT EXISTS (SELECT 1 FROM users WHERE name = $1::text)
		`, name)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", name, err)
		}
		n, _ := res.RowsAffected()
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}

	log.InfoContext(ctx, "seed completed",
		slog.Int("users_inserted", inserted),
		slog.Int("users_seeded", len(data.Users)))
	return nil
}

func seedProjects(ctx context.Context, tx *sql.Tx, data SeedData) error {
	if len(data.Projects) == 0 {
		return nil
	}

	if !data.ProjectsEnabled {
		// The implicit project only needs to exist; its name is irrelevant.
		_, err := tx.ExecContext(ctx, `
			INSERT INTO projects (name)
			SELECT $1::text
			WHERE NOT EXISTS (SELECT 1 FROM projects)
		`, data.Projects[0])
		if err != nil {
			return fmt.Errorf("seed implicit project: %w", err)
		}
		return nil
	}

	for _, name := range data.Projects {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO projects (name)
			SELECT $1::text
			WHERE NOT EXISTS (SELECT 1 FROM projects WHERE name = $1::text)
		`, name)
		if err != nil {
			return fmt.Errorf("seed project %q: %w", name, err)
		}
	}
	return nil
}
