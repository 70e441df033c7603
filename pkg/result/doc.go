// Package result provides the success/failure envelope returned across API
// boundaries.
//
// A Result[T] is either a success, with an optional message and data, or a
// failure, with an optional message, opaque details and a map of field name to
// validation messages. Envelopes are built through factory functions or the
// Builder and cannot be changed afterwards.
//
//	return result.OkData(user, "created")
//	return result.FailMessage[User]("user not found")
//	return result.FailFields[User](map[string][]string{"email": {"email has invalid format"}})
//
// JSON output omits absent fields:
//
//	{"success":true,"message":"created","data":{...}}
//	{"success":false,"errors":{"email":["email has invalid format"]}}
//
// FromError maps guard errors to a single field error and everything else to
// a failure whose message is the full error chain.
package result
