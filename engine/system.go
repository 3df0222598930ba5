package engine

// System is one stage of the fixed step, run in ascending Priority
// Systems that also implement event.Handler are registered with the router by AddSystem
type System interface {
	Name() string
	Priority() int
	Update()
}
