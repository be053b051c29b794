package scheduler

import (
	"context"
	"math"
	"sync"
)

// minChunk keeps tiny products out of the goroutine fan-out.
const minChunk = 256

// CombinationCount returns the size of the Cartesian product over the
// candidate lists. ok is false when the product overflows an int.
func CombinationCount(candidates [][]*Course) (count int, ok bool) {
	if len(candidates) == 0 {
		return 0, true
	}
	count = 1
	for _, list := range candidates {
		if len(list) == 0 {
			return 0, true
		}
		if count > math.MaxInt/len(list) {
			return 0, false
		}
		count *= len(list)
	}
	return count, true
}

// Enumerate emits every legal schedule taking one section per candidate list.
// The first list varies slowest. Tuples repeating a course name or failing the
// conflict detector are dropped.
func Enumerate(candidates [][]*Course) []*Schedule {
	total, ok := CombinationCount(candidates)
	if !ok || total == 0 {
		return nil
	}
	return enumerateRange(candidates, 0, total)
}

// EnumerateParallel produces the same schedules in the same order as
// Enumerate, splitting the product into contiguous chunks across workers.
func EnumerateParallel(ctx context.Context, candidates [][]*Course, workers int) ([]*Schedule, error) {
	total, ok := CombinationCount(candidates)
	if !ok || total == 0 {
		return nil, nil
	}
	if workers <= 1 || total <= minChunk {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return enumerateRange(candidates, 0, total), nil
	}

	chunk := (total + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}
	chunks := (total + chunk - 1) / chunk
	results := make([][]*Schedule, chunks)

	var wg sync.WaitGroup
	for c := 0; c < chunks; c++ {
		wg.Add(1)
		go func(c int) {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			from := c * chunk
			to := from + chunk
			if to > total {
				to = total
			}
			results[c] = enumerateRange(candidates, from, to)
		}(c)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	size := 0
	for _, part := range results {
		size += len(part)
	}
	schedules := make([]*Schedule, 0, size)
	for _, part := range results {
		schedules = append(schedules, part...)
	}
	return schedules, nil
}

// enumerateRange walks product indexes [from, to) in mixed radix, the last
// candidate list being the least significant digit.
func enumerateRange(candidates [][]*Course, from, to int) []*Schedule {
	var schedules []*Schedule
	digits := make([]int, len(candidates))
	tuple := make([]*Course, len(candidates))

	rest := from
	for d := len(candidates) - 1; d >= 0; d-- {
		digits[d] = rest % len(candidates[d])
		rest /= len(candidates[d])
	}

	for i := from; i < to; i++ {
		for d, list := range candidates {
			tuple[d] = list[digits[d]]
		}
		if !hasDuplicateNames(tuple) && !HasConflict(tuple) {
			schedules = append(schedules, NewSchedule(tuple))
		}
		for d := len(candidates) - 1; d >= 0; d-- {
			digits[d]++
			if digits[d] < len(candidates[d]) {
				break
			}
			digits[d] = 0
		}
	}
	return schedules
}
