package cron

// lookaheadDays bounds how far into the future NextAfter will search.
const lookaheadDays = 366
const secondsPerDay = 86400
const lookaheadSeconds = int64(lookaheadDays * secondsPerDay)

// NextAfter returns the earliest instant strictly greater than after that
// matches at least one registered job, searching second-by-second up to a
// 366-day horizon. Returns false if nothing in the horizon matches, if
// Destroy has latched, or if after is invalid.
//
// The search is read-only and does not participate in the execution-scope
// counter: it is safe to call while a job's callback is running (e.g. from
// within ExecuteBetween), and safe to call concurrently with nothing else,
// since the host still owns serialization of the Context as a whole.
func (c *Context) NextAfter(after Instant) (Instant, bool) {
	if c.destroyRequested || !after.Valid() {
		return Instant{}, false
	}

	for secOff := int64(0); secOff < lookaheadSeconds; secOff++ {
		sec, ok := addOffsetSeconds(after.Sec, secOff)
		if !ok {
			break
		}

		probe := Instant{Sec: sec}
		values := fieldValues(probe)

		foundInSecond := false
		var bestNs uint64

		for job := c.jobs; job != nil; job = job.next {
			if job.isRemoved {
				continue
			}
			if !nonDayFieldsMatch(job.schedule, values, false) {
				continue
			}
			if !dayRuleMatches(
				job.schedule.Field(FieldDayOfMonth),
				job.schedule.Field(FieldDayOfWeek),
				values[FieldDayOfMonth],
				values[FieldDayOfWeek],
			) {
				continue
			}

			minNs := uint64(0)
			if secOff == 0 {
				if after.Nsec >= 999999999 {
					continue
				}
				minNs = uint64(after.Nsec) + 1
			}

			matchedNs, ok := job.schedule.Field(FieldNanosecond).NextMatch(minNs, 999999999)
			if !ok {
				continue
			}
			if !foundInSecond || matchedNs < bestNs {
				bestNs = matchedNs
				foundInSecond = true
			}
		}

		if foundInSecond {
			return Instant{Sec: sec, Nsec: int32(bestNs)}, true
		}
	}

	return Instant{}, false
}
