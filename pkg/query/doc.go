// Package query orders and paginates in-memory slices.
//
// ToPaged sorts by a property path known only at runtime, such as a sort
// field taken from a query string, and then returns one page:
//
//	users, err := query.ToPaged(all, "Profile.Age", true, 2, 50)
//
// The path is resolved once per element type and cached, so repeated calls are
// cheap. When the sort field is known at compile time prefer OrderBy with a key
// selector:
//
//	users = query.OrderBy(all, func(u User) int { return u.Age }, false)
//
// Paginate and ToPage take a 1-based page index. A page index below 1 is
// treated as 1 and a page size below 1 as DefaultPageSize.
package query
