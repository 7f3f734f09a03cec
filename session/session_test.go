package session_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gear6io/geosql/ddl"
	"github.com/gear6io/geosql/pkg/errors"
	"github.com/gear6io/geosql/session"
	"github.com/gear6io/geosql/spatial"
	"github.com/gear6io/geosql/sqlgen"
)

func newSession(t *testing.T) (*session.Session, sqlmock.Sqlmock) {
	t.Helper()
	sqldb, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { sqldb.Close() })
	return session.New(session.NewDB(sqldb)), mock
}

func geometryTable() *sqlgen.Table {
	return sqlgen.NewTable("lake",
		sqlgen.Col("geom", spatial.MustGeometry(
			spatial.WithGeometryType(spatial.Polygon),
			spatial.WithSRID(4326),
		)),
	)
}

func TestExecInsert(t *testing.T) {
	s, mock := newSession(t)
	table := geometryTable()

	stmt, err := sqlgen.Insert(table).Value("geom", "POLYGON((0 0,1 0,1 1,0 0))").Compile()
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO lake (geom) VALUES (ST_GeomFromEWKT($1))`).
		WithArgs("POLYGON((0 0,1 0,1 1,0 0))").
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := s.Exec(context.Background(), stmt)
	require.NoError(t, err)
	affected, err := res.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecFailure(t *testing.T) {
	s, mock := newSession(t)
	table := geometryTable()

	stmt, err := sqlgen.Insert(table).Value("geom", "POINT(1 2)").Compile()
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO lake (geom) VALUES (ST_GeomFromEWKT($1))`).
		WithArgs("POINT(1 2)").
		WillReturnError(assert.AnError)

	_, err = s.Exec(context.Background(), stmt)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, session.ErrExecFailed))
}

func TestQueryGeometries(t *testing.T) {
	s, mock := newSession(t)
	table := geometryTable()

	stmt, err := sqlgen.Select(table.C("geom")).Compile()
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"geom"}).
		AddRow([]byte{0x01, 0x02}).
		AddRow([]byte{0x03})
	mock.ExpectQuery(`SELECT ST_AsEWKB(lake.geom) AS geom FROM lake`).WillReturnRows(rows)

	elements, err := s.QueryGeometries(context.Background(), stmt)
	require.NoError(t, err)
	require.Len(t, elements, 2)
	assert.Equal(t, []byte{0x01, 0x02}, elements[0].Data)
	assert.Equal(t, []byte{0x03}, elements[1].Data)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecAllRunsDDLInTransaction(t *testing.T) {
	s, mock := newSession(t)
	table := geometryTable()

	stmts, err := ddl.CreateTable(table)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE lake (geom geometry(POLYGON,4326))`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE INDEX idx_lake_geom ON lake USING GIST (geom)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, s.ExecAll(context.Background(), stmts))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecAllRollsBackOnFailure(t *testing.T) {
	s, mock := newSession(t)
	table := geometryTable()

	stmts, err := ddl.CreateTable(table)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE lake (geom geometry(POLYGON,4326))`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err = s.ExecAll(context.Background(), stmts)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, session.ErrExecFailed))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryWithWhereBind(t *testing.T) {
	s, mock := newSession(t)
	table := geometryTable()

	stmt, err := sqlgen.Select(sqlgen.Text("count(*)")).
		From(table).
		Where(table.C("geom").Eq("POINT(1 2)")).
		Compile()
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"count"}).AddRow(int64(3))
	mock.ExpectQuery(`SELECT count(*) FROM lake WHERE lake.geom = ST_GeomFromEWKT($1)`).
		WithArgs("POINT(1 2)").
		WillReturnRows(rows)

	got, err := s.Query(context.Background(), stmt)
	require.NoError(t, err)
	defer got.Close()

	require.True(t, got.Next())
	var count int64
	require.NoError(t, got.Scan(&count))
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
