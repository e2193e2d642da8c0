package forecast

import (
	"fmt"
	"sync"
)

// SearchResult reports the outcome of a cross-validated grid search.
type SearchResult struct {
	Best      Params
	BestScore float64 // mean negative MSE across folds, higher is better
	Evaluated int     // number of candidate combinations scored
}

// search runs k-fold cross-validation for every candidate in the grid and
// returns the best-scoring combination. Folds are contiguous slices of the
// (chronologically ordered) training segment. Candidates that fail to fit on
// any fold are skipped; if every candidate fails the search itself fails.
//
// Candidates are scored concurrently, bounded by workers, but results are
// collected by index so the selection is deterministic: ties resolve to the
// earliest candidate in grid order.
func search(x, y []float64, grid ParamGrid, folds, workers int) (*SearchResult, error) {
	n := len(x)
	if n < folds {
		return nil, fmt.Errorf("%w: %d training samples is not enough for %d-fold cross-validation", ErrFitFailed, n, folds)
	}
	candidates := grid.Candidates()
	if workers < 1 {
		workers = 1
	}

	scores := make([]float64, len(candidates))
	errs := make([]error, len(candidates))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, p := range candidates {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, p Params) {
			defer wg.Done()
			defer func() { <-sem }()
			scores[i], errs[i] = crossValidate(x, y, p, folds)
		}(i, p)
	}
	wg.Wait()

	best := -1
	for i := range candidates {
		if errs[i] != nil {
			continue
		}
		if best < 0 || scores[i] > scores[best] {
			best = i
		}
	}
	if best < 0 {
		return nil, fmt.Errorf("%w: every candidate combination failed cross-validation: %v", ErrFitFailed, errs[0])
	}

	return &SearchResult{
		Best:      candidates[best],
		BestScore: scores[best],
		Evaluated: len(candidates),
	}, nil
}

// crossValidate scores one candidate as the mean negative MSE over k
// contiguous folds. Fold sizes follow the usual n/k split with the remainder
// spread over the leading folds.
func crossValidate(x, y []float64, p Params, folds int) (float64, error) {
	n := len(x)
	foldSize := n / folds
	remainder := n % folds

	var total float64
	start := 0
	for f := 0; f < folds; f++ {
		size := foldSize
		if f < remainder {
			size++
		}
		end := start + size

		trainX := make([]float64, 0, n-size)
		trainX = append(trainX, x[:start]...)
		trainX = append(trainX, x[end:]...)
		trainY := make([]float64, 0, n-size)
		trainY = append(trainY, y[:start]...)
		trainY = append(trainY, y[end:]...)

		model, err := fitPipeline(p, trainX, trainY)
		if err != nil {
			return 0, fmt.Errorf("fold %d (%s): %w", f, p, err)
		}
		pred := model.Predict(x[start:end])
		total += meanSquaredError(y[start:end], pred)

		start = end
	}
	return -total / float64(folds), nil
}
