package services

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"alfredoptarigan/ats-screener/internal/logger"
	"alfredoptarigan/ats-screener/internal/metrics"
	"alfredoptarigan/ats-screener/internal/models"
)

var ErrPoolStopped = errors.New("analysis pool stopped")

// AnalysisPool bounds how many analyses decode and score at once.
type AnalysisPool interface {
	Start(ctx context.Context)
	Stop()
	Submit(ctx context.Context, input AnalysisInput) (*models.ScoreReport, error)
}

type analysisJob struct {
	ctx   context.Context
	input AnalysisInput
	done  chan *models.ScoreReport
}

type worker struct {
	analyzer    Analyzer
	jobQueue    chan analysisJob
	concurrency int
	wg          sync.WaitGroup
	stopChan    chan struct{}
	stopped     chan struct{}
	stopOnce    sync.Once
}

func NewAnalysisPool(analyzer Analyzer, concurrency, queueSize int) AnalysisPool {
	if concurrency < 1 {
		concurrency = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	return &worker{
		analyzer:    analyzer,
		jobQueue:    make(chan analysisJob, queueSize),
		concurrency: concurrency,
		stopChan:    make(chan struct{}),
		stopped:     make(chan struct{}),
	}
}

// Start implements AnalysisPool.
func (w *worker) Start(ctx context.Context) {
	logger.Info(ctx, "🚀 Starting analysis pool", zap.Int("workers", w.concurrency))

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}
}

// Stop implements AnalysisPool. Queued jobs are finished before it returns.
func (w *worker) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopChan)
		w.wg.Wait()
		close(w.stopped)
	})
}

// Submit implements AnalysisPool.
func (w *worker) Submit(ctx context.Context, input AnalysisInput) (*models.ScoreReport, error) {
	select {
	case <-w.stopChan:
		return nil, ErrPoolStopped
	default:
	}

	job := analysisJob{
		ctx:   ctx,
		input: input,
		done:  make(chan *models.ScoreReport, 1),
	}

	select {
	case w.jobQueue <- job:
		metrics.PoolQueueDepth.Set(float64(len(w.jobQueue)))
	case <-w.stopChan:
		return nil, ErrPoolStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case report := <-job.done:
		return report, nil
	case <-w.stopped:
		select {
		case report := <-job.done:
			return report, nil
		default:
			return nil, ErrPoolStopped
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			w.drain(workerID)
			logger.Debug(ctx, "👷 Worker stopped", zap.Int("worker", workerID))
			return
		case job := <-w.jobQueue:
			w.run(job, workerID)
		}
	}
}

func (w *worker) drain(workerID int) {
	for {
		select {
		case job := <-w.jobQueue:
			w.run(job, workerID)
		default:
			return
		}
	}
}

func (w *worker) run(job analysisJob, workerID int) {
	metrics.PoolQueueDepth.Set(float64(len(w.jobQueue)))

	// The submitter has gone away.
	if job.ctx.Err() != nil {
		return
	}

	logger.Debug(job.ctx, "👷 Worker processing analysis",
		zap.Int("worker", workerID),
		zap.String("filename", job.input.Filename),
	)
	job.done <- w.analyzer.Analyze(job.ctx, job.input)
}
