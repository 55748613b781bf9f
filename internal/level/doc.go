// Package level models Bunyan severity levels.
//
// A Level is the numeric code carried in the record's "level" field. Six
// codes have names (trace=10 through fatal=60); every other code in [0,255]
// is a custom level rendered as LVL{n}. Ordering is always the numeric code,
// so a custom 35 sorts between info and warn.
package level
