package tween

import "math"

// UnitID is the stable identifier of one animated unit. IDs are never
// reused within a Runtime.
type UnitID uint64

// EndedEvent is emitted exactly once when a non-repeating (or
// repeat-exhausted) timer transitions to its terminal completed state.
type EndedEvent struct {
	Unit  UnitID
	Timer *Timer
}

// EventSink receives ended events from a Runtime. Attach one via
// Runtime.SetEventSink. The sink is called during the tick, after all
// progress values are final and before sampling, so a sink that removes
// the finished unit's timer observes same-tick cleanup of its
// interpolation value.
type EventSink interface {
	EmitEnded(EndedEvent)
}

// EventSinkFunc adapts a plain function into an EventSink.
type EventSinkFunc func(EndedEvent)

// EmitEnded calls the function.
func (f EventSinkFunc) EmitEnded(ev EndedEvent) { f(ev) }

// Runtime owns the animation state for a population of units and drives
// the per-tick pipeline. Each unit exclusively owns a Timer, an easing
// curve, a derived progress, and a sampled interpolation value; the
// tables are parallel, keyed by UnitID.
//
// Runtime is not safe for concurrent use. All mutation happens on the
// goroutine that calls Tick, matching a game loop's update phase.
type Runtime struct {
	src    DeltaSource
	nextID UnitID

	timers   map[UnitID]*Timer
	curves   map[UnitID]Interpolation
	appliers map[UnitID]Applier

	progress    map[UnitID]float64
	progressVer map[UnitID]uint64
	curveVer    map[UnitID]uint64

	sampledPVer map[UnitID]uint64
	sampledCVer map[UnitID]uint64
	values      map[UnitID]float64

	sink      EventSink
	ended     []EndedEvent
	torndown  []UnitID
	resamples uint64
}

// NewRuntime creates a Runtime driven by the given delta source.
// A nil source is an integrator error and panics immediately; the
// runtime cannot run without knowing how much time each tick represents.
func NewRuntime(src DeltaSource) *Runtime {
	if src == nil {
		panic("tween: NewRuntime requires a DeltaSource")
	}
	return &Runtime{
		src:         src,
		nextID:      1,
		timers:      make(map[UnitID]*Timer),
		curves:      make(map[UnitID]Interpolation),
		appliers:    make(map[UnitID]Applier),
		progress:    make(map[UnitID]float64),
		progressVer: make(map[UnitID]uint64),
		curveVer:    make(map[UnitID]uint64),
		sampledPVer: make(map[UnitID]uint64),
		sampledCVer: make(map[UnitID]uint64),
		values:      make(map[UnitID]float64),
	}
}

// Spawn registers a new animated unit and returns its ID. A nil curve
// defaults to Linear; a nil applier means the unit's value is only read
// through Value. The timer is owned by the unit from here on.
func (r *Runtime) Spawn(t *Timer, curve Interpolation, applier Applier) UnitID {
	if t == nil {
		panic("tween: Spawn requires a Timer")
	}
	if curve == nil {
		curve = Linear
	}
	id := r.nextID
	r.nextID++
	r.timers[id] = t
	r.curves[id] = curve
	if applier != nil {
		r.appliers[id] = applier
	}
	return id
}

// Despawn removes a unit and all of its state immediately.
func (r *Runtime) Despawn(id UnitID) {
	r.removeTimer(id)
	delete(r.curves, id)
	delete(r.curveVer, id)
	delete(r.appliers, id)
	delete(r.values, id)
	delete(r.sampledPVer, id)
	delete(r.sampledCVer, id)
}

// RemoveTimer tears down a unit's timeline, leaving the unit itself
// (curve and applier) in place. The unit's progress disappears now and
// its stale interpolation value is deleted by the sample stage of the
// same tick — it is never visible to the apply stage again.
func (r *Runtime) RemoveTimer(id UnitID) {
	r.removeTimer(id)
}

func (r *Runtime) removeTimer(id UnitID) {
	if _, ok := r.timers[id]; !ok {
		return
	}
	delete(r.timers, id)
	delete(r.progress, id)
	delete(r.progressVer, id)
	r.torndown = append(r.torndown, id)
}

// SetCurve swaps a unit's easing curve. The unit is resampled on the
// next tick even if its progress did not move.
func (r *Runtime) SetCurve(id UnitID, curve Interpolation) {
	if curve == nil {
		curve = Linear
	}
	if _, ok := r.curves[id]; !ok {
		return
	}
	r.curves[id] = curve
	r.curveVer[id]++
}

// SetApplier replaces a unit's applier. A nil applier detaches it.
func (r *Runtime) SetApplier(id UnitID, applier Applier) {
	if _, ok := r.curves[id]; !ok {
		return
	}
	if applier == nil {
		delete(r.appliers, id)
		return
	}
	r.appliers[id] = applier
}

// SetEventSink attaches the sink that receives ended events. Pass nil
// to detach.
func (r *Runtime) SetEventSink(sink EventSink) { r.sink = sink }

// Timer returns the unit's timer for direct control (pause, direction
// reversal), or nil if the unit has no timeline.
func (r *Runtime) Timer(id UnitID) *Timer { return r.timers[id] }

// Progress returns the unit's progress as of the last tick. ok is false
// if the unit has no timeline or has not ticked yet. A NaN progress with
// ok true means the unit is in its start delay.
func (r *Runtime) Progress(id UnitID) (v float64, ok bool) {
	v, ok = r.progress[id]
	return v, ok
}

// Value returns the unit's sampled interpolation value. ok is false if
// the unit has never been sampled or its timeline was torn down.
func (r *Runtime) Value(id UnitID) (v float64, ok bool) {
	v, ok = r.values[id]
	return v, ok
}

// Units returns the number of live units.
func (r *Runtime) Units() int { return len(r.curves) }

// Resamples returns how many curve samples the runtime has computed in
// total. Because sampling is change-driven, a tick in which nothing
// moved leaves this counter unchanged.
func (r *Runtime) Resamples() uint64 { return r.resamples }

// Tick runs one frame of the pipeline: advance every timer by the delta
// source's delta, publish progress, dispatch ended events, sample
// changed units, and apply values. Each stage completes for the whole
// population before the next begins.
func (r *Runtime) Tick() {
	dt := r.src.Delta()

	// Stage 1+2: advance timers and publish progress. Units are
	// independent, so deriving progress in the same pass as the
	// advance is observably equivalent to two passes.
	r.ended = r.ended[:0]
	for id, t := range r.timers {
		p, ended := t.Advance(dt)
		old, ok := r.progress[id]
		same := ok && (p == old || (math.IsNaN(p) && math.IsNaN(old)))
		if !same {
			r.progress[id] = p
			r.progressVer[id]++
		}
		if ended {
			r.ended = append(r.ended, EndedEvent{Unit: id, Timer: t})
		}
	}

	// Ended events fire between the progress barrier and the sample
	// stage: a sink that tears the unit down here still gets same-tick
	// value cleanup below.
	if r.sink != nil {
		for _, ev := range r.ended {
			r.sink.EmitEnded(ev)
		}
	}

	// Stage 3: sample. Torn-down timelines lose their stale values
	// first, then every unit whose progress or curve moved since its
	// last sample is recomputed. Sentinel units are skipped and keep
	// no value.
	for _, id := range r.torndown {
		if _, live := r.progress[id]; !live {
			delete(r.values, id)
			delete(r.sampledPVer, id)
			delete(r.sampledCVer, id)
		}
	}
	r.torndown = r.torndown[:0]
	for id, p := range r.progress {
		if math.IsNaN(p) {
			delete(r.values, id)
			continue
		}
		pv, cv := r.progressVer[id], r.curveVer[id]
		if _, has := r.values[id]; has && pv == r.sampledPVer[id] && cv == r.sampledCVer[id] {
			continue
		}
		r.values[id] = r.curves[id].Sample(clamp01(p))
		r.sampledPVer[id] = pv
		r.sampledCVer[id] = cv
		r.resamples++
	}

	// Stage 4: apply. NaN values (a misbehaving custom curve) are
	// treated as do-not-apply; the unit is contained, the pipeline
	// never halts.
	for id, apply := range r.appliers {
		v, ok := r.values[id]
		if !ok || math.IsNaN(v) {
			continue
		}
		apply(v)
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
