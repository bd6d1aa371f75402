package engine

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	isatty "github.com/mattn/go-isatty"
)

// progress emits a cosmetic files-processed counter to stderr at a fixed
// interval. It never affects correctness or ordering of findings.
type progress struct {
	total   int
	done    int64
	quit    chan struct{}
	stopped chan struct{}
	active  bool
}

func newProgress(total int, enabled bool) *progress {
	p := &progress{
		total:   total,
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	p.active = enabled && total > 0 && isatty.IsTerminal(os.Stderr.Fd())
	if !p.active {
		close(p.stopped)
		return p
	}
	go p.loop()
	return p
}

func (p *progress) loop() {
	defer close(p.stopped)
	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case <-p.quit:
			return
		case <-tick.C:
			n := atomic.LoadInt64(&p.done)
			fmt.Fprintf(os.Stderr, "\r[%d/%d] files scanned", n, p.total)
		}
	}
}

func (p *progress) step() {
	atomic.AddInt64(&p.done, 1)
}

func (p *progress) stop() {
	if !p.active {
		return
	}
	close(p.quit)
	<-p.stopped
	fmt.Fprintf(os.Stderr, "\r[%d/%d] files scanned\n", atomic.LoadInt64(&p.done), p.total)
}
