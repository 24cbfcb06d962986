package ingest

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/five82/jlv/internal/logtail"
	"github.com/five82/jlv/internal/record"
)

// Result summarizes a finished pump.
type Result struct {
	Lines     int   // lines read, including malformed ones
	Records   int   // records sent to the queue
	Malformed int   // lines skipped because they did not parse
	Bytes     int64 // bytes of line data read
	Err       error // read failure; nil on a clean end-of-stream
}

// Pump reads lines, parses them and feeds the queue from its own goroutine.
type Pump struct {
	lines  logtail.Lines
	queue  *Queue
	parser record.Parser
	once   sync.Once
	done   chan Result
}

// NewPump returns a pump that reads from lines into q. Call Start to run it.
func NewPump(lines logtail.Lines, q *Queue) *Pump {
	return &Pump{
		lines: lines,
		queue: q,
		done:  make(chan Result, 1),
	}
}

// Start launches the read loop. It returns immediately; later calls are no-ops.
func (p *Pump) Start() {
	p.once.Do(func() {
		go func() {
			res := p.run()
			p.queue.Close()
			p.done <- res
			close(p.done)
		}()
	})
}

// Done yields the pump's Result exactly once when it stops, then is closed.
func (p *Pump) Done() <-chan Result {
	return p.done
}

func (p *Pump) run() Result {
	var res Result
	for {
		line, err := p.lines.Next()
		if err != nil {
			var lineErr *logtail.LineError
			switch {
			case errors.Is(err, io.EOF):
				return res
			case errors.As(err, &lineErr):
				res.Lines++
				res.Malformed++
				log.Printf("skipping line %d: %v", res.Lines, lineErr)
				continue
			default:
				res.Err = fmt.Errorf("read input: %w", err)
				log.Printf("pump stopped after %d lines: %v", res.Lines, err)
				return res
			}
		}

		res.Lines++
		res.Bytes += int64(len(line)) + 1

		rec, err := p.parser.Parse(line)
		if err != nil {
			res.Malformed++
			log.Printf("skipping malformed line %d: %v", res.Lines, err)
			continue
		}
		if !p.queue.Send(rec) {
			return res
		}
		res.Records++
	}
}
