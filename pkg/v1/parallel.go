package geotiff

import (
	"runtime"
	"sync"
)

// ExtractOptions controls point extraction behavior.
type ExtractOptions struct {
	// Recenter subtracts the world coordinates of the window midpoint
	// from every point, placing the extracted cloud about the origin.
	Recenter bool

	// Parallel enables concurrent extraction. Window rows are distributed
	// across a worker pool; results are reassembled in row order, so the
	// output is identical to a serial scan.
	Parallel bool

	// Workers specifies the number of extraction goroutines.
	// If 0, defaults to runtime.NumCPU().
	// Only used when Parallel is true.
	Workers int

	// Progress is an optional callback for tracking extraction progress.
	// Called after each window row completes with (done, total) rows.
	Progress func(done, total int)
}

// DefaultExtractOptions returns extract options with defaults.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{
		Recenter: false,
		Parallel: false,
		Workers:  runtime.NumCPU(),
	}
}

// extractParallel fans window rows out to a worker pool.
//
// Sampling goes through an offset-addressed read with no shared cursor,
// so workers need no synchronization around the raster itself. The first
// row error aborts the extraction after draining the pool.
func (d *Dataset) extractParallel(win Window, centerX, centerY float64, opts ExtractOptions) ([]Point, error) {
	rows := win.Height()

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > rows {
		workers = rows
	}

	type rowResult struct {
		row    int
		points []Point
		err    error
	}

	jobs := make(chan int, rows)
	results := make(chan rowResult, rows)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range jobs {
				points, err := d.extractRow(y, win, centerX, centerY)
				results <- rowResult{row: y, points: points, err: err}
			}
		}()
	}

	for y := win.StartY; y < win.EndY; y++ {
		jobs <- y
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	rowPoints := make(map[int][]Point, rows)
	done := 0
	total := 0
	var firstErr error

	for result := range results {
		done++
		if opts.Progress != nil {
			opts.Progress(done, rows)
		}
		if result.err != nil {
			if firstErr == nil {
				firstErr = result.err
			}
			continue
		}
		rowPoints[result.row] = result.points
		total += len(result.points)
	}
	if firstErr != nil {
		return nil, firstErr
	}

	// Reassemble in row-major order so parallel output matches serial.
	points := make([]Point, 0, total)
	for y := win.StartY; y < win.EndY; y++ {
		points = append(points, rowPoints[y]...)
	}
	return points, nil
}
