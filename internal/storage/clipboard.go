package storage

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var ErrClipboardUnsupported = errors.New("clipboard is not supported on this system")

// ClipboardSink copies documents to the system clipboard on Commit. Each commit replaces
// the previous clipboard content.
type ClipboardSink struct {
	writeAll    func(text string) error
	unsupported bool
}

func NewClipboardSink() *ClipboardSink {
	return &ClipboardSink{
		writeAll:    clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
	}
}

func (s *ClipboardSink) Stage(name string, data []byte) (Staged, error) {
	if s.unsupported {
		return nil, fmt.Errorf("copy %s: %w", name, ErrClipboardUnsupported)
	}
	return &pendingCopy{sink: s, name: name, text: string(data)}, nil
}

type pendingCopy struct {
	sink *ClipboardSink
	name string
	text string
}

func (p *pendingCopy) Commit() error {
	if err := p.sink.writeAll(p.text); err != nil {
		return fmt.Errorf("copy %s to clipboard: %w", p.name, err)
	}
	return nil
}

func (p *pendingCopy) Abort() {}
