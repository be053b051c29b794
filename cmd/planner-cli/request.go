package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/noah-isme/course-planner/internal/dto"
)

func loadRequest(path string) (dto.PlanScheduleRequest, error) {
	var req dto.PlanScheduleRequest

	f, err := os.Open(path)
	if err != nil {
		return req, fmt.Errorf("open request: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, fmt.Errorf("request %s is empty", path)
		}
		return req, fmt.Errorf("decode request: %w", err)
	}
	return req, nil
}

func writeTable(w io.Writer, resp *dto.PlanScheduleResponse) error {
	if !resp.Found {
		fmt.Fprintln(w, "No schedule found.")
		if len(resp.MissingCourses) > 0 {
			fmt.Fprintf(w, "Missing courses: %s\n", strings.Join(resp.MissingCourses, ", "))
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tFITNESS\tSECTION")
	for _, schedule := range resp.Schedules {
		for i, section := range schedule.Sections {
			if i == 0 {
				fmt.Fprintf(tw, "%d\t%d\t%s\n", schedule.Rank, schedule.Fitness, section.Summary)
				continue
			}
			fmt.Fprintf(tw, "\t\t%s\n", section.Summary)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d of %d ranked schedules (%d legal, %d combinations)\n",
		resp.Counts.Returned, resp.Counts.Ranked, resp.Counts.Legal, resp.Counts.Combinations)
	if len(resp.MissingCourses) > 0 {
		fmt.Fprintf(w, "Skipped missing courses: %s\n", strings.Join(resp.MissingCourses, ", "))
	}
	return nil
}
