package zvariant

import "fmt"

// RecordWriter receives dictionary entries as fixed two-field records.
// Implemented by the byte-level codec; this package never touches wire
// bytes itself, it only hands the codec entries in a stable order.
type RecordWriter interface {
	WriteRecord(key, value Value) error
}

// EmitRecords emits one record per entry, in insertion order, so a
// fixed construction sequence always produces the same record stream.
// The first writer error aborts the emission.
func (d *Dict) EmitRecords(w RecordWriter) error {
	for i := range d.entries {
		if err := w.WriteRecord(d.entries[i].Key, d.entries[i].Value); err != nil {
			return fmt.Errorf("emit record %d: %w", i, err)
		}
	}
	return nil
}
