package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/floe/go-backscrub/internal/frame"
	"github.com/floe/go-backscrub/internal/job"
	"github.com/floe/go-backscrub/internal/logger"
	"github.com/floe/go-backscrub/internal/storage"
	"github.com/floe/go-backscrub/internal/timing"
)

var log = logger.Log

// Worker pool for batch compositing. The background image is shared
// read-only across workers; every other buffer is per-job, so the pixel
// operations stay reentrant.
type Worker struct {
	ctx        context.Context
	background *frame.Image

	mu  sync.Mutex
	err error
}

func NewWorker(ctx context.Context, background *frame.Image) *Worker {
	return &Worker{
		ctx:        ctx,
		background: background,
	}
}

// Err reports the first failure seen by any worker, nil if none.
func (w *Worker) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

func (w *Worker) WorkerComposite(i int, jobs <-chan job.Composite) {
	name := fmt.Sprintf("WorkerComposite #%d", i)
	log.Debugf("%s started\n", name)
	defer log.Debugf("%s finished\n", name)

	for {
		select {
		case <-w.ctx.Done():
			return
		case j, ok := <-jobs:
			if !ok {
				return
			}
			// after the first failure just drain the channel so the
			// producer never blocks
			if w.Err() != nil {
				continue
			}
			log.Debugf("%s got job %s\n", name, j.Print())

			start := timing.Now()
			err := w.composite(j)
			if err != nil {
				w.fail(fmt.Errorf("frame %d: %w", j.FrameNum, err))
				continue
			}
			log.Debugf("%s Frame %d done. Took time: %s\n", name, j.FrameNum, timing.Since(start))
		}
	}
}

func (w *Worker) composite(j job.Composite) error {
	src, err := storage.LoadRGB(j.FramePath)
	if err != nil {
		return err
	}
	mask, err := storage.LoadMask(j.MaskPath)
	if err != nil {
		return err
	}

	out, err := frame.AlphaBlend(src, w.background, mask)
	if err != nil {
		return err
	}
	return storage.SaveRGB(j.OutPath, out)
}

// fail records the first error only.
func (w *Worker) fail(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err == nil {
		w.err = err
	} else {
		log.Debugf("dropping extra worker error: %v\n", err)
	}
}
