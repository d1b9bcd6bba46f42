package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/career/pkg/seed"
)

type execCall struct {
	sql  string
	args []any
}

// seedTx answers the existence check with false, hands out fresh ids and records writes.
type seedTx struct {
	pgx.Tx
	execs     []execCall
	committed bool
}

func (tx *seedTx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	tx.execs = append(tx.execs, execCall{sql: sql, args: args})
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (tx *seedTx) QueryRow(context.Context, string, ...any) pgx.Row { return idRow{} }

func (tx *seedTx) Commit(context.Context) error {
	tx.committed = true
	return nil
}

func (tx *seedTx) Rollback(context.Context) error { return nil }

type idRow struct{}

func (idRow) Scan(dest ...any) error {
	switch d := dest[0].(type) {
	case *bool:
		*d = false
	case *uuid.UUID:
		*d = uuid.New()
	}
	return nil
}

type txDB struct {
	db
	tx *seedTx
}

func (d *txDB) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) { return d.tx, nil }

func TestSeedStampsRowsNewestFirst(t *testing.T) {
	tx := &seedTx{}
	store := &Store{pool: &txDB{tx: tx}}
	data := seed.Default()
	require.NoError(t, store.Seed(context.Background(), data))
	require.True(t, tx.committed)

	cases := []struct {
		table string
		want  int
	}{
		{table: "jobs", want: len(data.Jobs)},
		{table: "learning_paths", want: len(data.LearningPaths)},
		{table: "badges", want: len(data.Badges)},
		{table: "job_applications", want: len(data.Applications)},
	}
	for _, tc := range cases {
		t.Run(tc.table, func(t *testing.T) {
			var stamps []time.Time
			for _, e := range tx.execs {
				if !strings.Contains(e.sql, "INSERT INTO "+tc.table+" ") {
					continue
				}
				ts, ok := e.args[len(e.args)-1].(time.Time)
				require.True(t, ok, "last argument of %s insert is its timestamp", tc.table)
				stamps = append(stamps, ts)
			}
			require.Len(t, stamps, tc.want)
			for i := 1; i < len(stamps); i++ {
				assert.True(t, stamps[i].Before(stamps[i-1]), "row %d is not older than row %d", i, i-1)
			}
		})
	}
}
