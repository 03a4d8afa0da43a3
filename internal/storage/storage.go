package storage

import (
	"fmt"
	"io"
	"sync"
)

// Sink receives rendered documents in two steps. Stage prepares a document without
// making it visible; the returned Staged publishes it with Commit or discards it with Abort.
// name identifies the document in errors and logs.
type Sink interface {
	Stage(name string, data []byte) (Staged, error)
}

// Staged is a document prepared by a Sink but not yet published.
type Staged interface {
	Commit() error
	Abort()
}

// Document pairs a rendered document with the sink it goes to.
type Document struct {
	Sink Sink
	Name string
	Data []byte
}

// Publish stages every document before committing any of them. If a stage fails, the
// documents staged so far are aborted and nothing is published. A commit failure aborts
// the remaining documents; the ones already committed stay published.
func Publish(docs ...Document) error {
	staged := make([]Staged, 0, len(docs))
	for _, doc := range docs {
		s, err := doc.Sink.Stage(doc.Name, doc.Data)
		if err != nil {
			abortAll(staged)
			return err
		}
		staged = append(staged, s)
	}

	for i, s := range staged {
		if err := s.Commit(); err != nil {
			abortAll(staged[i+1:])
			return err
		}
	}
	return nil
}

// Write stages and commits a single document.
func Write(sink Sink, name string, data []byte) error {
	return Publish(Document{Sink: sink, Name: name, Data: data})
}

func abortAll(staged []Staged) {
	for _, s := range staged {
		s.Abort()
	}
}

// WriterSink writes documents to an io.Writer, each followed by a newline.
// Nothing reaches the writer before Commit.
type WriterSink struct {
	w  io.Writer
	mu sync.Mutex
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Stage(name string, data []byte) (Staged, error) {
	return &pendingWrite{sink: s, name: name, data: data}, nil
}

type pendingWrite struct {
	sink *WriterSink
	name string
	data []byte
}

func (p *pendingWrite) Commit() error {
	p.sink.mu.Lock()
	defer p.sink.mu.Unlock()

	if _, err := p.sink.w.Write(p.data); err != nil {
		return fmt.Errorf("write %s: %w", p.name, err)
	}
	if _, err := p.sink.w.Write([]byte{'\n'}); err != nil {
		return fmt.Errorf("write %s newline: %w", p.name, err)
	}
	return nil
}

func (p *pendingWrite) Abort() {}
