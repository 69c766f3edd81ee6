package longhashmap

// tableRecords - Is used to iterate over all records in a bucket table, bucket by bucket and in chain order
// within each bucket.
type tableRecords[V comparable] struct {
	table    []*entry[V]
	bucketNo int
	current  *entry[V]
}

// newTableRecords - Returns a pointer to a new tableRecords struct positioned at the first record
func newTableRecords[V comparable](table []*entry[V]) *tableRecords[V] {
	t := &tableRecords[V]{table: table}
	t.seek()

	return t
}

// hasNext - Returns true if there are more records to be fetched from a call to next.
func (T *tableRecords[V]) hasNext() bool {
	return T.current != nil
}

// next - Returns the next record together with the bucket it belongs to.
// The iterator has moved past the record before it is returned, so the caller may relink record.next freely.
// It returns:
//   - record is the next record, nil if there are no more records.
//   - bucketNo is the index of the bucket holding record.
func (T *tableRecords[V]) next() (record *entry[V], bucketNo int) {
	record = T.current
	bucketNo = T.bucketNo
	if record == nil {
		return
	}

	T.current = record.next
	if T.current == nil {
		T.bucketNo++
		T.seek()
	}

	return
}

// seek - Moves to the head of the first non-empty bucket at or after bucketNo
func (T *tableRecords[V]) seek() {
	for ; T.bucketNo < len(T.table); T.bucketNo++ {
		if T.table[T.bucketNo] != nil {
			T.current = T.table[T.bucketNo]
			return
		}
	}
	T.current = nil
}
