package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

type recordingObserver struct {
	labels []string
}

func (o *recordingObserver) ObserveDBQuery(label string, _ time.Duration) {
	o.labels = append(o.labels, label)
}

var courseColumns = []string{"id", "course", "course_title", "section", "schedule_num", "units", "seats_available", "seats_total"}

func TestCatalogRepositoryLookupSections(t *testing.T) {
	db, mock, cleanup := newCatalogMock(t)
	defer cleanup()
	observer := &recordingObserver{}
	repo := NewCatalogRepository(db, observer)

	mock.ExpectQuery(`(?s)SELECT id, course, .* FROM course WHERE course LIKE \?`).
		WithArgs("CS-310").
		WillReturnRows(sqlmock.NewRows(courseColumns).
			AddRow("c1", "CS-310", "Data Structures", "01", 20345, 3.0, 0, 40).
			AddRow("c2", "CS-310", "Data Structures", "02", 20346, 3.0, 12, 40))
	mock.ExpectQuery(`FROM meeting WHERE course_id IN \(\?, \?\)`).
		WithArgs("c1", "c2").
		WillReturnRows(sqlmock.NewRows([]string{"course_id", "meeting_id", "meeting_type", "days", "hours", "location", "instructor"}).
			AddRow("c1", "m1", "LEC", "MW", "0900-0950", "GMCS 214", "Ada").
			AddRow("c1", "m2", "LAB", "F", "1000-1150", "GMCS 405", "Ada").
			AddRow("c2", "m3", "LEC", "TTH", "1100-1215", "", ""))
	mock.ExpectQuery(`FROM footnote WHERE course_id IN \(\?, \?\)`).
		WithArgs("c1", "c2").
		WillReturnRows(sqlmock.NewRows([]string{"course_id", "footnote_id", "code", "text"}).
			AddRow("c2", "f1", "P", "Prerequisite required"))

	records, err := repo.LookupSections(context.Background(), "CS-310")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "c1", records[0].ID)
	assert.Equal(t, 20345, records[0].ScheduleNumber)
	require.Len(t, records[0].Meetings, 2)
	assert.Equal(t, "m2", records[0].Meetings[1].MeetingID)
	assert.Empty(t, records[0].Footnotes)

	require.Len(t, records[1].Meetings, 1)
	assert.Equal(t, "TTH", records[1].Meetings[0].Days)
	require.Len(t, records[1].Footnotes, 1)
	assert.Equal(t, "P", records[1].Footnotes[0].Code)

	assert.Equal(t, []string{"catalog_courses", "catalog_meetings", "catalog_footnotes"}, observer.labels)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryNoMatches(t *testing.T) {
	db, mock, cleanup := newCatalogMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db, nil)

	mock.ExpectQuery(`FROM course WHERE course LIKE \?`).
		WithArgs("PHYS-%").
		WillReturnRows(sqlmock.NewRows(courseColumns))

	records, err := repo.LookupSections(context.Background(), "PHYS-%")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryQueryError(t *testing.T) {
	db, mock, cleanup := newCatalogMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db, nil)

	boom := errors.New("connection reset")
	mock.ExpectQuery(`FROM course WHERE course LIKE \?`).WillReturnError(boom)

	_, err := repo.LookupSections(context.Background(), "CS-310")
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
