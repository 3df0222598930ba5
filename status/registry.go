package status

import "sync/atomic"

// Registry is the central metrics facade
// Systems cache pointers at construction; Update loops write directly to atomics
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Snapshot copies every metric into plain maps keyed by name
// Bools are reported as 0/1 ints
func (r *Registry) Snapshot() (ints map[string]int64, floats map[string]float64) {
	ints = make(map[string]int64, r.Ints.Count()+r.Bools.Count())
	floats = make(map[string]float64, r.Floats.Count())

	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		ints[key] = ptr.Load()
	})
	r.Bools.Range(func(key string, ptr *atomic.Bool) {
		if ptr.Load() {
			ints[key] = 1
		} else {
			ints[key] = 0
		}
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		floats[key] = ptr.Get()
	})
	return ints, floats
}
