package state

import "github.com/five82/jlv/internal/record"

// noSelection is the cursor value for "unselected".
const noSelection = -1

// RecordList is the append-only record log plus the selection cursor.
// It is not safe for concurrent use; only the UI loop touches it.
type RecordList struct {
	records  []record.Record
	selected int
}

// NewRecordList returns an empty, unselected list.
func NewRecordList() *RecordList {
	return &RecordList{selected: noSelection}
}

// Append adds r to the end. The first record becomes selected; later appends
// leave the cursor where the operator put it.
func (l *RecordList) Append(r record.Record) {
	l.records = append(l.records, r)
	if l.selected == noSelection {
		l.selected = 0
	}
}

// Len returns the number of records.
func (l *RecordList) Len() int { return len(l.records) }

// At returns the record at index i, which must be in [0, Len()).
func (l *RecordList) At(i int) record.Record { return l.records[i] }

// Window returns up to height records starting at offset. The slice shares
// storage with the list and must not be modified.
func (l *RecordList) Window(offset, height int) []record.Record {
	if offset < 0 {
		offset = 0
	}
	if height <= 0 || offset >= len(l.records) {
		return nil
	}
	end := min(offset+height, len(l.records))
	return l.records[offset:end:end]
}

// Selection returns the cursor and the record it points at. ok is false
// while the list is empty.
func (l *RecordList) Selection() (index int, rec record.Record, ok bool) {
	if l.selected == noSelection || len(l.records) == 0 {
		return noSelection, record.Record{}, false
	}
	return l.selected, l.records[l.selected], true
}

// SelectUp moves the cursor n records towards the start, stopping at 0.
func (l *RecordList) SelectUp(n int) {
	l.move(-n, n)
}

// SelectDown moves the cursor n records towards the end, stopping at the last.
func (l *RecordList) SelectDown(n int) {
	l.move(n, n)
}

// SelectFirst jumps to the first record.
func (l *RecordList) SelectFirst() {
	if len(l.records) == 0 {
		return
	}
	l.selected = 0
}

// SelectLast jumps to the last record.
func (l *RecordList) SelectLast() {
	if len(l.records) == 0 {
		return
	}
	l.selected = len(l.records) - 1
}

func (l *RecordList) move(delta, n int) {
	if n < 1 || len(l.records) == 0 {
		return
	}
	cur := l.selected
	if cur == noSelection {
		cur = 0
	}
	l.selected = clamp(cur+delta, 0, len(l.records)-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
