// Package httpx holds request and response helpers for net/http handlers and
// chi routers.
//
// Request helpers read client addresses, bearer tokens, query parameters and
// paging arguments. Response helpers render result envelopes and map errors
// to status codes, so guard failures surface as 4xx responses with their
// exact message.
//
//	r := chi.NewRouter()
//	r.Use(httpx.RequestID, httpx.Recover(log))
//	r.Get("/users", func(w http.ResponseWriter, r *http.Request) {
//		page, err := httpx.Apply(httpx.PageFromRequest(r, 20), users)
//		if err != nil {
//			httpx.WriteError(w, r, log, err)
//			return
//		}
//		httpx.WriteResult(w, result.OkData(page))
//	})
//
// RequestIDExtractor plugs the request id into the logger package so every
// record logged with the request context carries request_id.
package httpx
