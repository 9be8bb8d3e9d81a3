package services_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/ats-screener/internal/models"
	"alfredoptarigan/ats-screener/internal/services"
)

type stubAnalyzer struct {
	calls   atomic.Int32
	release chan struct{}
}

func (s *stubAnalyzer) Analyze(_ context.Context, input services.AnalysisInput) *models.ScoreReport {
	if s.release != nil {
		<-s.release
	}
	s.calls.Add(1)
	return &models.ScoreReport{ATSScore: float64(len(input.Data)), Suggestions: []string{}}
}

func (s *stubAnalyzer) AnalyzeText(context.Context, services.ResumeText, string) *models.ScoreReport {
	return &models.ScoreReport{Suggestions: []string{}}
}

func TestAnalysisPool_Submit(t *testing.T) {
	stub := &stubAnalyzer{}
	pool := services.NewAnalysisPool(stub, 2, 4)
	pool.Start(context.Background())
	defer pool.Stop()

	report, err := pool.Submit(context.Background(), services.AnalysisInput{Filename: "a.pdf", Data: []byte("abc")})
	require.NoError(t, err)
	assert.Equal(t, 3.0, report.ATSScore)
}

func TestAnalysisPool_Concurrent(t *testing.T) {
	stub := &stubAnalyzer{}
	pool := services.NewAnalysisPool(stub, 3, 2)
	pool.Start(context.Background())
	defer pool.Stop()

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(size int) {
			defer wg.Done()
			report, err := pool.Submit(context.Background(), services.AnalysisInput{Data: make([]byte, size)})
			if err == nil && report.ATSScore != float64(size) {
				t.Errorf("got report for %v bytes, want %d", report.ATSScore, size)
			}
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.EqualValues(t, n, stub.calls.Load())
}

func TestAnalysisPool_Stopped(t *testing.T) {
	pool := services.NewAnalysisPool(&stubAnalyzer{}, 1, 1)
	pool.Start(context.Background())
	pool.Stop()
	pool.Stop()

	_, err := pool.Submit(context.Background(), services.AnalysisInput{})
	assert.ErrorIs(t, err, services.ErrPoolStopped)
}

func TestAnalysisPool_ContextCancelled(t *testing.T) {
	stub := &stubAnalyzer{release: make(chan struct{})}
	pool := services.NewAnalysisPool(stub, 1, 1)
	pool.Start(context.Background())
	defer pool.Stop()
	defer close(stub.release)

	// Occupy the only worker.
	go func() {
		_, _ = pool.Submit(context.Background(), services.AnalysisInput{})
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := pool.Submit(ctx, services.AnalysisInput{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
