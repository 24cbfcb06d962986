// Package state holds the scrollable record list behind the jlv UI.
//
// # Overview
//
// RecordList combines the record log (every record received this session,
// in arrival order) with a selection cursor. The UI appends drained records
// on each tick and forwards navigation keys; the renderer reads it through
// Selection, Window and At.
//
// # Cursor Invariants
//
//   - Empty list: nothing is selected.
//   - First Append: the cursor becomes 0.
//   - Non-empty list: the cursor is always in [0, Len()-1].
//   - Navigation clamps at both ends; it never wraps.
//   - Append never moves an existing cursor. The operator's position holds
//     while new records arrive below it.
//
// # Concurrency Model
//
// There is none on purpose: the list is owned by the Bubble Tea update loop.
// Records cross from the ingest goroutine through ingest.Queue, never by
// sharing this type. Index i refers to the same record for the whole process
// lifetime because the log is never compacted.
//
// # Usage Example
//
//	list := state.NewRecordList()
//	list.Append(a) // cursor 0
//	list.Append(b)
//	list.SelectDown(5) // clamps to 1
//	if i, rec, ok := list.Selection(); ok {
//		fmt.Printf("%d / %d %v\n", i+1, list.Len(), rec.Keys())
//	}
package state
