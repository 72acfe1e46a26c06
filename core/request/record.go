package request

// SourceRecord labels values read from a database row.
const SourceRecord = "record"

// FromRecord wraps a single database row, keyed by column name.
// Driver byte slices are turned into strings and NULL columns are absent.
func FromRecord(row map[string]any) *MapData {
	values := make(map[string]any, len(row))
	for k, v := range row {
		if v == nil {
			continue
		}
		if b, ok := v.([]byte); ok {
			v = string(b)
		}
		values[k] = v
	}
	return NewMapData(SourceRecord, values)
}
