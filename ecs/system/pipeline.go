package system

import "github.com/milk9111/shipscroller/ecs"

// NewPipeline returns the per-tick systems in order. input and pilot may be nil.
func NewPipeline(input ecs.System, pilot *AutopilotSystem) *ecs.Scheduler {
	s := ecs.NewScheduler(
		NewSessionSystem(),
		NewReloadSystem(pilot),
	)
	if input != nil {
		s.Add(input)
	}
	if pilot != nil {
		s.Add(pilot)
	}
	s.Add(NewSamplerSystem())
	s.Add(NewMotionSystem())
	s.Add(NewScrollSystem())
	s.Add(NewAnimationSystem())
	return s
}
