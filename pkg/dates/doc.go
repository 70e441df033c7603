// Package dates provides calendar helpers over time.Time: day, week and month
// boundaries, age calculation, lenient parsing and Unix millisecond conversion.
//
// Weeks start on Monday. Boundaries are computed in the location of the given
// time.
package dates
