package sentiment

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestLexiconClassifier(t *testing.T) {
	c := NewLexiconClassifier()

	tests := []struct {
		text string
		want Label
	}{
		{"Barangnya bagus, mantap sekali", Positive},
		{"Kecewa, barang rusak dan jelek", Negative},
		{"Paket diterima hari Senin", Neutral},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			res, err := c.Classify(context.Background(), tt.text)
			assert.Equal(t, err, nil)
			assert.Equal(t, len(res), 3)
			assert.Equal(t, NormalizeLabel(best(res).Label), tt.want)

			sum := 0.0
			for _, r := range res {
				sum += r.Score
			}
			if sum < 0.999 || sum > 1.001 {
				t.Fatalf("scores sum to %f", sum)
			}
		})
	}
}

func TestLazyClassifier_InitOnceUnderConcurrency(t *testing.T) {
	var builds int32
	lazy := NewLazyClassifier("lazy", func(ctx context.Context) (Classifier, error) {
		atomic.AddInt32(&builds, 1)
		time.Sleep(20 * time.Millisecond)
		return NewLexiconClassifier(), nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := lazy.Classify(context.Background(), "bagus"); err != nil {
				t.Errorf("classify: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, atomic.LoadInt32(&builds), int32(1))
}

func TestLazyClassifier_FailedInitRetried(t *testing.T) {
	attempts := 0
	lazy := NewLazyClassifier("lazy", func(ctx context.Context) (Classifier, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("model download failed")
		}
		return NewLexiconClassifier(), nil
	})

	_, err := lazy.Classify(context.Background(), "bagus")
	assert.NotEqual(t, err, nil)

	res, err := lazy.Classify(context.Background(), "bagus")
	assert.Equal(t, err, nil)
	assert.Equal(t, len(res), 3)
	assert.Equal(t, attempts, 2)

	// Resolver degrades to neutral while the classifier cannot be built.
	broken := NewLazyClassifier("broken", func(ctx context.Context) (Classifier, error) {
		return nil, errors.New("offline")
	})
	got := NewResolver(broken, nil).Resolve(context.Background(), "barangnya jelek")
	assert.Equal(t, got, Result{Label: Neutral, Score: 0.5})
}
