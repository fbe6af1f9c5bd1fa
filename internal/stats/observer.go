package stats

// Observer receives progress checkpoints from a Profiler. Implementations
// must not block; their calls never affect the run.
type Observer interface {
	SchemaFetched(columns int)
	JobStarted(index, total int, column ColumnDescriptor)
	JobCompleted(index, total int, report ColumnReport)
}

// NopObserver ignores every checkpoint.
type NopObserver struct{}

func (NopObserver) SchemaFetched(int)                      {}
func (NopObserver) JobStarted(int, int, ColumnDescriptor) {}
func (NopObserver) JobCompleted(int, int, ColumnReport)   {}
