package objectgen

// virtualBonus is added to a record's effective frequency while its
// GeneratedCounter is still below MinLimit, forcing production of
// under-represented records (spec.md §4.4).
const virtualBonus = 1_000_000

// Record is one CommonRecordList entry: a frequency-weighted, attempt- and
// limit-bounded generation config, parameterized over the kind-specific
// payload T (an artifact filter, a bank definition id, ...).
type Record[T any] struct {
	ID                string
	Weight            int
	RemainingAttempts int
	GeneratedCounter  int
	MinLimit          int
	MaxLimit          int
	Enabled           bool
	Payload           T
}

func (r *Record[T]) effectiveFreq() int {
	if !r.Enabled {
		return 0
	}
	freq := r.Weight
	if r.GeneratedCounter < r.MinLimit {
		freq += virtualBonus
	}
	return freq
}

// reject decrements the record's remaining attempts, disabling it once
// they reach zero.
func (r *Record[T]) reject() {
	r.RemainingAttempts--
	if r.RemainingAttempts <= 0 {
		r.Enabled = false
	}
}

// recordGenerated increments the generation counter and disables the
// record once MaxLimit is reached (MaxLimit <= 0 means unbounded).
func (r *Record[T]) recordGenerated() {
	r.GeneratedCounter++
	if r.MaxLimit > 0 && r.GeneratedCounter >= r.MaxLimit {
		r.Enabled = false
	}
}

// RecordList is a CommonRecordList<Record<T>>: a flat vector of records
// with a derived total frequency and a cumulative-range draw.
type RecordList[T any] struct {
	Records []*Record[T]
}

// TotalFreq sums every enabled record's effective frequency, virtual
// bonus included.
func (l *RecordList[T]) TotalFreq() int {
	total := 0
	for _, r := range l.Records {
		total += r.effectiveFreq()
	}
	return total
}

// PickByFreq walks the records' cumulative frequency ranges and returns
// the one covering rngFreq, or nil if rngFreq falls outside every range
// (TotalFreq() == 0, or a caller bug).
func (l *RecordList[T]) PickByFreq(rngFreq int) *Record[T] {
	base := 0
	for _, r := range l.Records {
		f := r.effectiveFreq()
		if f == 0 {
			continue
		}
		if rngFreq < base+f {
			return r
		}
		base += f
	}
	return nil
}
