package cron

// ExecuteAt decomposes now into the seven positional field values and fires
// every registered, non-tombstoned job whose schedule matches, at most once
// each, for this instant. Invalid instants (out-of-range nanoseconds) and
// calls made after Destroy has latched are silently ignored — ExecuteAt
// never returns an error, matching the spec's void/ignore contract.
//
// Reentrancy: ExecuteAt increments an execution-scope counter on entry and
// decrements it on exit, nesting correctly if a callback recursively calls
// ExecuteAt (including via ExecuteBetween). A job's lastFired is updated
// before its callback runs, so a nested call for the same instant can never
// fire the same job twice. Only when the outermost scope exits are
// tombstoned jobs swept and any deferred Destroy honored.
func (c *Context) ExecuteAt(now Instant) {
	if c.destroyRequested || !now.Valid() {
		return
	}

	values := fieldValues(now)

	c.executionDepth++
	job := c.jobs
	for job != nil {
		if c.destroyRequested {
			break
		}
		next := job.next

		if job.isRemoved {
			job = next
			continue
		}

		if !nonDayFieldsMatch(job.schedule, values, true) {
			job = next
			continue
		}

		if dayRuleMatches(
			job.schedule.Field(FieldDayOfMonth),
			job.schedule.Field(FieldDayOfWeek),
			values[FieldDayOfMonth],
			values[FieldDayOfWeek],
		) {
			if !job.hasLastFired || now.After(job.lastFired) {
				job.lastFired = now
				job.hasLastFired = true
				job.callback(job.userData, now)
			}
		}

		job = next
	}
	c.executionDepth--
	c.finalizeExecutionScope()
}

// Tick obtains the current instant from clock and executes it.
func (c *Context) Tick(clock Clock) {
	c.ExecuteAt(clock.Now())
}

// ExecuteBetween fires every instant in the half-open window (after, until]
// in ascending order, one ExecuteAt call per instant, by repeatedly calling
// NextAfter and advancing the cursor. It holds a single execution scope
// across the entire window, so reentrant mutations from any fired callback
// are deferred until the whole catch-up finishes rather than being
// reconciled between individual fires.
//
// Returns false if either bound is an invalid Instant or Destroy has
// already latched; returns true (a no-op) if until <= after.
func (c *Context) ExecuteBetween(after, until Instant) bool {
	if c.destroyRequested {
		return false
	}
	if !after.Valid() || !until.Valid() {
		return false
	}
	if until.Compare(after) <= 0 {
		return true
	}

	cursor := after
	c.executionDepth++
	for !c.destroyRequested {
		next, ok := c.NextAfter(cursor)
		if !ok {
			break
		}
		if next.Compare(until) > 0 {
			break
		}
		c.ExecuteAt(next)
		if c.destroyRequested {
			break
		}
		cursor = next
	}
	c.executionDepth--
	c.finalizeExecutionScope()
	return true
}

// nonDayFieldsMatch reports whether every field except day-of-month and
// day-of-week matches values. includeNanoseconds controls whether the
// nanosecond field participates — ExecuteAt checks it (an instant is exact
// to the nanosecond); NextAfter's second-level scan does not, since the
// nanosecond search happens separately once a candidate second matches.
func nonDayFieldsMatch(s *Schedule, values [fieldCount]uint64, includeNanoseconds bool) bool {
	for i := 0; i < fieldCount; i++ {
		kind := FieldKind(i)
		if kind == FieldDayOfMonth || kind == FieldDayOfWeek {
			continue
		}
		if !includeNanoseconds && kind == FieldNanosecond {
			continue
		}
		if !s.Field(kind).Matches(values[i]) {
			return false
		}
	}
	return true
}
