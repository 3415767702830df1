// Package editor applies snippet payloads to a text buffer: every non-empty
// selection is replaced by the payload, every empty cursor gets it inserted,
// all in one atomic edit.
package editor

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNoBuffer is reported when there is no active editable buffer to insert
// into. It is informational; the user can retry with a target selected.
var ErrNoBuffer = errors.New("no active editable buffer")

// Selection is a half-open byte range [Start, End) in a buffer. Start == End
// is an empty cursor position.
type Selection struct {
	Start int
	End   int
}

// Empty reports whether the selection is a bare cursor.
func (s Selection) Empty() bool { return s.Start == s.End }

// Buffer is an editable text target with zero or more selections. A buffer
// with no selections has a single implicit cursor at the end of the text.
type Buffer struct {
	Text       string
	Selections []Selection
}

// Insert applies payload to the buffer in one atomic edit and returns the
// resulting text. Each non-empty selection is replaced, each cursor gets the
// payload inserted. A nil buffer means no active target and yields
// ErrNoBuffer. Selections must be in bounds and non-overlapping; a bad edit
// leaves the buffer untouched.
func Insert(buf *Buffer, payload string) (string, error) {
	if buf == nil {
		return "", ErrNoBuffer
	}

	sels := buf.Selections
	if len(sels) == 0 {
		sels = []Selection{{Start: len(buf.Text), End: len(buf.Text)}}
	}
	sels = append([]Selection(nil), sels...)
	sort.Slice(sels, func(i, j int) bool { return sels[i].Start < sels[j].Start })

	if err := validate(buf.Text, sels); err != nil {
		return "", err
	}

	var b strings.Builder
	prev := 0
	for _, sel := range sels {
		b.WriteString(buf.Text[prev:sel.Start])
		b.WriteString(payload)
		prev = sel.End
	}
	b.WriteString(buf.Text[prev:])

	buf.Text = b.String()
	return buf.Text, nil
}

func validate(text string, sels []Selection) error {
	prevEnd := 0
	for _, sel := range sels {
		if sel.Start < 0 || sel.End < sel.Start || sel.End > len(text) {
			return fmt.Errorf("selection %d:%d out of range for buffer of %d bytes", sel.Start, sel.End, len(text))
		}
		if sel.Start < prevEnd {
			return fmt.Errorf("selections overlap at offset %d", sel.Start)
		}
		prevEnd = sel.End
	}
	return nil
}

// ParseSelections parses a comma-separated list of start:end ranges (a bare
// offset is an empty cursor), e.g. "4:9,20,31:35".
func ParseSelections(spec string) ([]Selection, error) {
	if spec == "" {
		return nil, nil
	}
	var sels []Selection
	for _, part := range strings.Split(spec, ",") {
		var sel Selection
		if strings.Contains(part, ":") {
			if _, err := fmt.Sscanf(part, "%d:%d", &sel.Start, &sel.End); err != nil {
				return nil, fmt.Errorf("bad selection %q: %w", part, err)
			}
		} else {
			if _, err := fmt.Sscanf(part, "%d", &sel.Start); err != nil {
				return nil, fmt.Errorf("bad selection %q: %w", part, err)
			}
			sel.End = sel.Start
		}
		sels = append(sels, sel)
	}
	return sels, nil
}
