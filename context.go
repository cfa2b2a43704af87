package cron

import "github.com/google/uuid"

// Context is an insertion-ordered registry of jobs plus the execution-scope
// bookkeeping that makes the registry safe to mutate from inside a
// callback. It is not internally synchronized: the spec's concurrency
// model is single-threaded cooperative, and the host is responsible for
// serializing all operations on a given Context (see package doc). Adding a
// mutex here would both contradict that documented model and hide bugs a
// host should see (a Context used from two goroutines without external
// locking is a host error, not something this package should paper over).
type Context struct {
	jobs              *Job
	executionDepth    int
	destroyRequested  bool
}

// NewContext creates an empty, ready-to-use Context.
func NewContext() *Context {
	return &Context{}
}

// Add parses schedule and registers cb against it, prepending the new job
// to the registry (so callback dispatch order is the reverse of insertion
// order — a new job becomes the head of the list, matching the dispatch
// order of the job list this package's evaluation loop walks). Returns
// ErrDestroyRequested if Destroy has already been requested, or the
// *ParseError from a malformed schedule.
func (c *Context) Add(schedule string, cb Callback, userData any) (*Job, error) {
	if c.destroyRequested {
		return nil, ErrDestroyRequested
	}
	if cb == nil {
		return nil, ErrInvalidArgument
	}

	sched, err := ParseSchedule(schedule)
	if err != nil {
		return nil, err
	}

	job := &Job{
		schedule: sched,
		callback: cb,
		userData: userData,
		diagID:   uuid.New(),
	}
	job.next = c.jobs
	c.jobs = job
	return job, nil
}

// Remove unregisters job. While an execution scope is open (executionDepth
// > 0) it only tombstones the job — physical removal is deferred to the
// next sweep, at the outermost scope's exit, so a callback can safely
// remove itself or any other job mid-iteration. Returns false if job is not
// (or no longer) present in the registry.
func (c *Context) Remove(job *Job) bool {
	if c.destroyRequested || job == nil {
		return false
	}

	var prev *Job
	for cur := c.jobs; cur != nil; cur = cur.next {
		if cur != job {
			prev = cur
			continue
		}

		if c.executionDepth > 0 {
			cur.isRemoved = true
			return true
		}

		if prev == nil {
			c.jobs = cur.next
		} else {
			prev.next = cur.next
		}
		return true
	}
	return false
}

// Destroy tears the Context down. If no execution scope is open, it
// unregisters every job immediately. If a scope is open (this is itself
// being called from inside a callback), it latches destroyRequested; every
// public operation thereafter refuses to run, and teardown completes
// automatically when the outermost scope unwinds.
func (c *Context) Destroy() {
	if c.executionDepth > 0 {
		c.destroyRequested = true
		return
	}
	c.jobs = nil
}

// sweep unlinks every tombstoned job, preserving the order of the rest.
// Only valid to call at executionDepth == 0.
func (c *Context) sweep() {
	var prev *Job
	cur := c.jobs
	for cur != nil {
		next := cur.next
		if cur.isRemoved {
			if prev == nil {
				c.jobs = next
			} else {
				prev.next = next
			}
		} else {
			prev = cur
		}
		cur = next
	}
}

// finalizeExecutionScope reconciles tombstoned jobs and any deferred
// destruction once the outermost execution scope exits.
func (c *Context) finalizeExecutionScope() {
	if c.executionDepth != 0 {
		return
	}
	c.sweep()
	if c.destroyRequested {
		c.jobs = nil
	}
}
