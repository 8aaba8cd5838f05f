package game

import (
	"runtime"
	"sync"

	"github.com/pthm-cable/nebula/components"
	"github.com/pthm-cable/nebula/renderer"
)

// parallelThreshold is the minimum particle count to use parallel
// evaluation. Below this, single-threaded is faster due to goroutine
// overhead.
const parallelThreshold = 1024

// particleSnapshot captures the immutable per-particle state once, so
// per-frame evaluation never touches the ECS.
type particleSnapshot struct {
	Desc  components.Descriptor
	Group uint8
}

// workChunk represents a range of particles for a worker to evaluate.
type workChunk struct {
	start, end int
	t          float32
}

// parallelState holds resources for parallel field evaluation.
type parallelState struct {
	snapshots  []particleSnapshot
	numWorkers int

	// Worker pool channels
	workChan chan workChunk // sends work to workers
	doneChan chan struct{}  // workers signal completion
	stopChan chan struct{}  // signals workers to exit
	wg       sync.WaitGroup // tracks active workers
	running  bool           // true if workers are running
}

func newParallelState() *parallelState {
	return &parallelState{
		numWorkers: runtime.GOMAXPROCS(0),
	}
}

// startWorkers launches persistent worker goroutines.
func (p *parallelState) startWorkers(g *Game) {
	if p.running {
		return
	}

	p.workChan = make(chan workChunk, p.numWorkers)
	p.doneChan = make(chan struct{}, p.numWorkers)
	p.stopChan = make(chan struct{})
	p.running = true

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(g)
	}
}

// stopWorkers signals all workers to exit and waits for them.
func (p *parallelState) stopWorkers() {
	if !p.running {
		return
	}

	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
	p.running = false
}

// worker runs in a goroutine, evaluating chunks until stopped.
func (p *parallelState) worker(g *Game) {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopChan:
			return
		case chunk, ok := <-p.workChan:
			if !ok {
				return
			}
			g.computeChunk(chunk.start, chunk.end, chunk.t)
			p.doneChan <- struct{}{}
		}
	}
}

// ensureSnapshots builds the snapshot slice from the ECS on first use.
// Descriptors are immutable, so the slice stays valid for the run.
func (g *Game) ensureSnapshots() {
	if len(g.parallel.snapshots) == g.particleCount {
		return
	}

	g.parallel.snapshots = make([]particleSnapshot, 0, g.particleCount)

	query := g.particleFilter.Query()
	for query.Next() {
		desc, style := query.Get()
		g.parallel.snapshots = append(g.parallel.snapshots, particleSnapshot{
			Desc:  *desc,
			Group: style.Group,
		})
	}
}

// evaluateField computes every particle's position, size and alpha at
// the current field time into the points buffer.
func (g *Game) evaluateField() {
	g.ensureSnapshots()

	n := len(g.parallel.snapshots)
	if cap(g.points) < n {
		g.points = make([]renderer.Point, n)
	}
	g.points = g.points[:n]

	t := float32(g.elapsed)

	if n < parallelThreshold {
		g.computeChunk(0, n, t)
		return
	}
	g.computeParallel(n, t)
}

// computeParallel dispatches work to the worker pool.
func (g *Game) computeParallel(n int, t float32) {
	if !g.parallel.running {
		g.parallel.startWorkers(g)
	}

	numWorkers := g.parallel.numWorkers
	chunkSize := (n + numWorkers - 1) / numWorkers

	chunksDispatched := 0
	for w := 0; w < numWorkers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}

		g.parallel.workChan <- workChunk{start: start, end: end, t: t}
		chunksDispatched++
	}

	for i := 0; i < chunksDispatched; i++ {
		<-g.parallel.doneChan
	}
}

// computeChunk evaluates a range of particles. Pure math over immutable
// snapshots, so chunks never contend.
func (g *Game) computeChunk(i0, i1 int, t float32) {
	for i := i0; i < i1; i++ {
		snap := &g.parallel.snapshots[i]

		pos, size, alpha := g.params.Evaluate(t, &snap.Desc)

		g.points[i] = renderer.Point{
			Pos:   pos,
			Size:  size,
			Alpha: alpha,
			Group: snap.Group,
		}
	}
}
