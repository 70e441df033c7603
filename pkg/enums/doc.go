// Package enums registers the members of Go enumerations so they can be
// listed, parsed from names and rendered for APIs.
//
//	var Statuses = enums.MustNewSet(
//		enums.Member[Status]{Value: Draft, Name: "draft"},
//		enums.Member[Status]{Value: Active, Name: "active"},
//	)
//
//	s, err := Statuses.Parse(r.URL.Query().Get("status"))
package enums
