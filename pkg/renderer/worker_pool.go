package renderer

import (
	"context"
	"fmt"
	"sync"

	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/integrator"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID   int
	WorkerID int
	Pixels   int
	Stats    integrator.Stats
	Error    error
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	wg          sync.WaitGroup
}

// Worker renders tiles with its own RayTracer and random generator
type Worker struct {
	ID        int
	raytracer *integrator.RayTracer
	image     *FloatImage
	progress  *core.ProgressReporter
}

// NewWorkerPool creates numWorkers workers. newRayTracer is called once per
// worker with the worker ID.
func NewWorkerPool(numWorkers, maxTasks int, img *FloatImage, progress *core.ProgressReporter, newRayTracer func(workerID int) *integrator.RayTracer) *WorkerPool {
	numWorkers = max(1, numWorkers)
	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, maxTasks),
		resultQueue: make(chan TileResult, maxTasks),
	}
	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:        i,
			raytracer: newRayTracer(i),
			image:     img,
			progress:  progress,
		})
	}
	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, wp.taskQueue, wp.resultQueue, &wp.wg)
	}
}

// Stop closes the task queue and waits for workers to finish
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return len(wp.workers)
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, tasks <-chan TileTask, results chan<- TileResult, wg *sync.WaitGroup) {
	defer wg.Done()
	for task := range tasks {
		results <- w.renderTask(ctx, task)
	}
}

// renderTask renders one tile. A panic while tracing is turned into an error
// for this task; the worker carries on with the next one.
func (w *Worker) renderTask(ctx context.Context, task TileTask) (result TileResult) {
	result = TileResult{TaskID: task.TaskID, WorkerID: w.ID}
	before := w.raytracer.Stats()

	defer func() {
		if r := recover(); r != nil {
			result.Error = fmt.Errorf("worker %d: tile %d: panic while tracing: %v", w.ID, task.Tile.ID, r)
		}
		after := w.raytracer.Stats()
		result.Stats = integrator.Stats{Rays: after.Rays - before.Rays, MaxDepth: after.MaxDepth}
	}()

	cancelled := func() bool { return ctx.Err() != nil }
	result.Pixels = renderTile(w.raytracer, task.Tile, w.image, w, cancelled)
	if err := ctx.Err(); err != nil {
		result.Error = err
	}
	return result
}

func (w *Worker) pixelDone(x, y int) {
	w.progress.Add(1)
}
