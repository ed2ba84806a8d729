package core

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/floe/go-backscrub/internal/config"
	"github.com/floe/go-backscrub/internal/frame"
	"github.com/floe/go-backscrub/internal/job"
	"github.com/floe/go-backscrub/internal/logger"
	p "github.com/floe/go-backscrub/internal/progress"
	"github.com/floe/go-backscrub/internal/respath"
	"github.com/floe/go-backscrub/internal/storage"
	"github.com/floe/go-backscrub/internal/timing"
	"github.com/floe/go-backscrub/internal/workers"
)

var log = logger.Log

// Composite blends every frame in framesDir with a background image,
// weighted by the matching mask in masksDir, and writes the results to
// outDir. Frames and masks are paired up in name order.
func Composite(ctx context.Context, framesDir, masksDir, backgroundName, outDir string) error {
	frames, err := storage.ScanFrames(framesDir)
	if err != nil {
		return err
	}
	masks, err := storage.ScanFrames(masksDir)
	if err != nil {
		return err
	}
	if len(frames) != len(masks) {
		return fmt.Errorf("Got %d frames but %d masks", len(frames), len(masks))
	}

	// the background may live in the asset search path rather than cwd
	bgPath, ok := ResolveAsset(backgroundName, config.CategoryBackgrounds)
	if !ok {
		return fmt.Errorf("Background %q not found", backgroundName)
	}

	// probe the first frame for the pipeline dimensions, then scale the
	// background once up front
	first, err := storage.LoadRGB(frames[0])
	if err != nil {
		return err
	}
	background, err := storage.LoadBackground(bgPath, first.Rows, first.Cols)
	if err != nil {
		return err
	}
	log.Debugf("Background %s scaled to %dx%d\n", bgPath, first.Cols, first.Rows)

	p.ProgressReset(len(frames), "Compositing... ")
	start := timing.Now()

	// ===== START WORKERS

	jobs := make(chan job.Composite)
	worker := workers.NewWorker(ctx, background)
	numCpu := runtime.NumCPU()

	wg := sync.WaitGroup{}
	for i := 0; i < numCpu; i++ {
		wg.Add(1)
		i := i
		go func() {
			worker.WorkerComposite(i, jobs)
			wg.Done()
		}()
	}

	for i, framePath := range frames {
		j := job.New(i, framePath, masks[i], filepath.Join(outDir, fmt.Sprintf("out_%08d.png", i)))
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return ctx.Err()
		case jobs <- j:
		}
		p.Add(1)
	}

	close(jobs)
	wg.Wait()
	p.Finish()

	if err := worker.Err(); err != nil {
		return err
	}
	log.Infof("Composited %d frames in %s", len(frames), timing.Since(start))
	return nil
}

// ConvertYUYV converts one RGB image file to a raw packed 4:2:2 dump.
func ConvertYUYV(input, output string) error {
	src, err := storage.LoadRGB(input)
	if err != nil {
		return err
	}

	start := timing.Now()
	out, err := frame.RGBToYUYV(src)
	if err != nil {
		return err
	}
	log.Debugf("Converted %dx%d in %s\n", src.Cols, src.Rows, timing.Since(start))

	return storage.WriteYUYV(output, out)
}

// ResolveAsset is the single place the environment gets read for asset
// lookup; the resolver itself only ever sees the snapshot.
func ResolveAsset(name, category string) (string, bool) {
	return respath.New(respath.FromEnv()).Resolve(name, category)
}
