package renderer

// Options controls the render output and scheduling.
type Options struct {
	// Output dimensions in pixels.
	Width, Height int

	// SamplesPerPixel is the number of progressive passes for offline
	// renders. Interactive renders ignore it and accumulate until the
	// window closes.
	SamplesPerPixel int

	// MaxDepth bounds the path recursion.
	MaxDepth int

	// NumWorkers sizes the job pool. Zero picks a default that leaves
	// one core free.
	NumWorkers int

	// TileWidth and TileHeight are the preferred tile dimensions. They
	// are rounded down to the closest factor of the frame dimensions so
	// tiles partition the image exactly.
	TileWidth, TileHeight int

	// Seed makes tile sampling reproducible.
	Seed int64
}

// DefaultOptions returns options for a medium-quality offline render
func DefaultOptions() Options {
	return Options{
		Width:           800,
		Height:          600,
		SamplesPerPixel: 128,
		MaxDepth:        16,
		TileWidth:       32,
		TileHeight:      32,
		Seed:            1,
	}
}

// roundDownToClosestFactor returns the largest value not above start that
// divides total evenly, falling back to 1
func roundDownToClosestFactor(start, total int) int {
	if start > total {
		start = total
	}
	for f := start; f > 1; f-- {
		if total%f == 0 {
			return f
		}
	}
	return 1
}
