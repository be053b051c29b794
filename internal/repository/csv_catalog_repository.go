package repository

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/gocarina/gocsv"

	"github.com/noah-isme/course-planner/internal/models"
)

// CSVCatalogRepository serves sections from a denormalised CSV export, one
// line per meeting. The file is decoded once on first use.
type CSVCatalogRepository struct {
	path string

	once     sync.Once
	loadErr  error
	sections []models.CourseRecord
}

// NewCSVCatalogRepository points the repository at a catalog file.
func NewCSVCatalogRepository(path string) *CSVCatalogRepository {
	return &CSVCatalogRepository{path: path}
}

// LookupSections matches course names with SQL LIKE semantics ('%' and '_',
// case-insensitive). Sections keep file order.
func (r *CSVCatalogRepository) LookupSections(ctx context.Context, pattern string) ([]models.CourseRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.once.Do(func() { r.sections, r.loadErr = loadCSVCatalog(r.path) })
	if r.loadErr != nil {
		return nil, r.loadErr
	}

	matcher := likePattern(pattern)
	result := make([]models.CourseRecord, 0)
	for _, section := range r.sections {
		if matcher.MatchString(section.Course) {
			section.Meetings = append([]models.MeetingRecord(nil), section.Meetings...)
			result = append(result, section)
		}
	}
	return result, nil
}

func loadCSVCatalog(path string) ([]models.CourseRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer file.Close()

	var rows []models.CatalogRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return groupCatalogRows(rows), nil
}

// groupCatalogRows folds meeting lines into sections, keyed by section id.
func groupCatalogRows(rows []models.CatalogRow) []models.CourseRecord {
	sections := make([]models.CourseRecord, 0)
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.ID]
		if !ok {
			i = len(sections)
			index[row.ID] = i
			sections = append(sections, models.CourseRecord{
				ID:             row.ID,
				Course:         row.Course,
				Title:          row.Title,
				Section:        row.Section,
				ScheduleNumber: row.ScheduleNumber,
				Units:          row.Units,
				SeatsAvailable: row.SeatsAvailable,
				SeatsTotal:     row.SeatsTotal,
			})
		}
		// a section with no meetings still occupies one line
		if row.MeetingID == "" && row.Days == "" && row.Hours == "" {
			continue
		}
		sections[i].Meetings = append(sections[i].Meetings, models.MeetingRecord{
			CourseID:    row.ID,
			MeetingID:   row.MeetingID,
			MeetingType: row.MeetingType,
			Days:        row.Days,
			Hours:       row.Hours,
			Location:    row.Location,
			Instructor:  row.Instructor,
		})
	}
	return sections
}

func likePattern(pattern string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString("(?i)^")
	for _, r := range pattern {
		switch r {
		case '%':
			b.WriteString(".*")
		case '_':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return regexp.MustCompile(b.String())
}
