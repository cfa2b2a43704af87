package cron

import "github.com/google/uuid"

// Callback is invoked once per firing instant for a matching job. userData
// is the opaque value supplied to Add; at is the instant that matched.
type Callback func(userData any, at Instant)

// Job is a registered schedule plus callback. The pointer itself is the
// opaque handle a host holds for Remove; callers must not dereference its
// unexported fields. A Job is owned transitively by the Context that
// created it.
type Job struct {
	schedule     *Schedule
	callback     Callback
	userData     any
	lastFired    Instant
	hasLastFired bool
	isRemoved    bool
	next         *Job

	// diagID is an opaque correlation id for host-side diagnostics only; it
	// plays no part in the handle's identity (Remove compares pointers).
	diagID uuid.UUID
}

// DiagID returns the job's diagnostic correlation id, suitable for log
// correlation in a host driver. It carries no semantic weight within the
// evaluator itself.
func (j *Job) DiagID() uuid.UUID {
	return j.diagID
}

// JobHandle is a non-owning reference to a registered Job, valid until the
// job is physically destroyed (removal during an execution scope only
// tombstones it; the handle stays recognizable to Remove until sweep).
type JobHandle = *Job
