// Package cron implements a nanosecond-precision schedule evaluator: an
// embeddable library that lets a host register named callbacks keyed to
// recurring instants described by an extended 7-field cron grammar, and
// that, on each host-driven tick, fires exactly those registered callbacks
// whose schedules match the supplied instant.
//
// The package owns no clock, thread, or event loop — the host drives time
// in via ExecuteAt, Tick, or ExecuteBetween, and is responsible for
// serializing all operations against a given Context.
//
// Schedule strings are exactly seven whitespace-separated fields, in order:
//
//	nanosecond (0-999999999)  second (0-59)  minute (0-59)  hour (0-23)
//	day-of-month (1-31)       month (1-12)   day-of-week (0-6, 0=Sunday)
//
// Per-field syntax:
//
//	*            any value
//	42           exact value
//	10-20        range
//	1,3,5        list
//	*/15         every 15, from the field's minimum
//	10-50/5      every 5, inside the range
//
// Day-of-month and day-of-week combine per the historical vixie-cron
// convention: when either field is the literal "*" they are ANDed,
// otherwise they are ORed.
package cron
