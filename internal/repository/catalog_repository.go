package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/course-planner/internal/models"
)

// QueryObserver receives catalog query timings.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// CatalogRepository reads course sections from a SQL catalog. Queries are
// written with '?' placeholders and rebound for the connected driver.
type CatalogRepository struct {
	db       *sqlx.DB
	observer QueryObserver
}

// NewCatalogRepository constructs the repository. observer may be nil.
func NewCatalogRepository(db *sqlx.DB, observer QueryObserver) *CatalogRepository {
	return &CatalogRepository{db: db, observer: observer}
}

const (
	selectCourses = `SELECT id, course, COALESCE(course_title, '') AS course_title, COALESCE(section, '') AS section,
		schedule_num, COALESCE(units, 0) AS units, seats_available, seats_total
		FROM course WHERE course LIKE ? ORDER BY course, id`
	selectMeetings = `SELECT course_id, meeting_id, COALESCE(meeting_type, '') AS meeting_type, COALESCE(days, '') AS days,
		COALESCE(hours, '') AS hours, COALESCE(location, '') AS location, COALESCE(instructor, '') AS instructor
		FROM meeting WHERE course_id IN (?) ORDER BY course_id, meeting_id`
	selectFootnotes = `SELECT course_id, footnote_id, code, text FROM footnote WHERE course_id IN (?) ORDER BY course_id, footnote_id`
)

// LookupSections returns every section whose course name matches pattern
// (SQL LIKE), with meetings and footnotes attached.
func (r *CatalogRepository) LookupSections(ctx context.Context, pattern string) ([]models.CourseRecord, error) {
	var courses []models.CourseRecord
	if err := r.timed("catalog_courses", func() error {
		return r.db.SelectContext(ctx, &courses, r.db.Rebind(selectCourses), pattern)
	}); err != nil {
		return nil, fmt.Errorf("select courses like %q: %w", pattern, err)
	}
	if len(courses) == 0 {
		return []models.CourseRecord{}, nil
	}

	ids := make([]string, len(courses))
	index := make(map[string]int, len(courses))
	for i, course := range courses {
		ids[i] = course.ID
		index[course.ID] = i
	}

	var meetings []models.MeetingRecord
	if err := r.selectIn(ctx, "catalog_meetings", &meetings, selectMeetings, ids); err != nil {
		return nil, fmt.Errorf("select meetings: %w", err)
	}
	for _, meeting := range meetings {
		if i, ok := index[meeting.CourseID]; ok {
			courses[i].Meetings = append(courses[i].Meetings, meeting)
		}
	}

	var footnotes []models.Footnote
	if err := r.selectIn(ctx, "catalog_footnotes", &footnotes, selectFootnotes, ids); err != nil {
		return nil, fmt.Errorf("select footnotes: %w", err)
	}
	for _, note := range footnotes {
		if i, ok := index[note.CourseID]; ok {
			courses[i].Footnotes = append(courses[i].Footnotes, note)
		}
	}

	return courses, nil
}

func (r *CatalogRepository) selectIn(ctx context.Context, label string, dest interface{}, query string, ids []string) error {
	expanded, args, err := sqlx.In(query, ids)
	if err != nil {
		return err
	}
	return r.timed(label, func() error {
		return r.db.SelectContext(ctx, dest, r.db.Rebind(expanded), args...)
	})
}

func (r *CatalogRepository) timed(label string, fn func() error) error {
	start := time.Now()
	err := fn()
	if r.observer != nil {
		r.observer.ObserveDBQuery(label, time.Since(start))
	}
	return err
}
