package commands

import (
	"fmt"
	"log"

	"github.com/pkg/errors"

	"presensi/backend/internal/pkg/repository/postgresql"
)

// ErrHelp provides context that help was given.
var ErrHelp = errors.New("provided help")

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{
	{
		Index:       1,
		Description: "CREATE TYPE \"user_role\" AS ENUM",
		Query: `
        CREATE TYPE "user_role" AS ENUM ('USER', 'ADMIN');`,
	},
	{
		Index:       2,
		Description: "Create table: users.",
		Query: `
        CREATE TABLE IF NOT EXISTS users (
            id serial primary key,
            nama text not null,
            email text not null unique,
            password text not null,
            role user_role not null default 'USER',
            nim text,
            program_studi text,
            created_at timestamptz default now(),
            updated_at timestamptz
        );`,
	},
	{
		Index:       3,
		Description: "Create admin with email: admin@presensi.local, password: 1",
		Query: `
        INSERT INTO users(nama, email, role, password)
        SELECT 'Administrator', 'admin@presensi.local', 'ADMIN', '$2a$10$NKtnMwDPFSQLG6uOi4Zqheru5Ygbj9TWFHjpl478rRSaO5cJ9QuH2'
        WHERE NOT EXISTS (SELECT email FROM users WHERE email = 'admin@presensi.local');
        `,
	},
	{
		Index:       4,
		Description: "Create table: presensi.",
		Query: `
        CREATE TABLE IF NOT EXISTS presensi (
            id serial primary key,
            user_id int not null references users(id),
            nama text not null,
            check_in timestamptz not null,
            check_out timestamptz,
            check_in_lat double precision,
            check_in_lon double precision,
            check_out_lat double precision,
            check_out_lon double precision,
            bukti_foto text,
            created_at timestamptz default now(),
            updated_at timestamptz
        );`,
	},
	{
		Index:       5,
		Description: "One open session per user.",
		Query: `
        CREATE UNIQUE INDEX IF NOT EXISTS uq_presensi_open
        ON presensi (user_id)
        WHERE check_out IS NULL;`,
	},
	{
		Index:       6,
		Description: "Report filter indexes.",
		Query: `
        CREATE INDEX IF NOT EXISTS idx_presensi_check_in ON presensi (check_in DESC);
        CREATE INDEX IF NOT EXISTS idx_presensi_created_at ON presensi (created_at);`,
	},
	{
		Index:       7,
		Description: "Create table: books.",
		Query: `
        CREATE TABLE IF NOT EXISTS books (
            id serial primary key,
            title text not null,
            author text not null,
            created_at timestamptz default now(),
            updated_at timestamptz
        );`,
	},
}

// Migrate creates the scheme in the database.
func Migrate(db *postgresql.Database) {
	for _, s := range scheme {
		if _, err := db.Query(s.Query); err != nil {
			log.Fatalln("migrate error", err)
		}
	}
}

func MigrateUP(db *postgresql.Database) {
	var (
		version int
		dirty   bool
		er      *string
	)
	err := db.QueryRow("SELECT version, dirty, error FROM schema_migrations").Scan(&version, &dirty, &er)
	if err != nil {
		if err.Error() == `ERROR: relation "schema_migrations" does not exist (SQLSTATE=42P01)` {
			if _, err = db.Exec(`
				CREATE TABLE IF NOT EXISTS schema_migrations (version int not null, dirty bool not null, error text);
				DELETE FROM schema_migrations;
				INSERT INTO schema_migrations (version, dirty) values (0, false);
			`); err != nil {
				log.Fatalln("migrate schema_migrations create error", err)
			}
			version = 0
			dirty = false
		} else {
			log.Fatalln("migrate schema_migrations scan: ", err)
		}
	}

	if dirty {
		for _, v := range scheme {
			if v.Index == version {
				if _, err = db.Exec(v.Query); err != nil {
					if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s'`, err.Error())); err != nil {
						log.Fatalln("migrate error", err)
					}
					log.Fatalln(fmt.Sprintf("migrate error version: %d", version), err)
				}
				if _, err = db.Exec(`UPDATE schema_migrations SET dirty = false, error = null`); err != nil {
					log.Fatalln("migrate error", err)
				}
			}
		}
	}

	for _, s := range scheme {
		if s.Index > version {
			if _, err = db.Exec(s.Query); err != nil {
				if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s', version = %d, dirty = true`, err.Error(), s.Index)); err != nil {
					log.Fatalln("migrate error", err)
				}
				log.Fatalln(fmt.Sprintf("migrate error version: %d", s.Index), err)
			}
			if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET version = %d`, s.Index)); err != nil {
				log.Fatalln("migrate error", err)
			}
		}
	}
}
