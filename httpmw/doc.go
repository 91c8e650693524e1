// Package httpmw provides HTTP middleware that applies the sanitize engine
// at the edge of the request pipeline.
//
// Query sanitizes every string query parameter with the SEARCH preset before
// the handler runs. It is deliberately more lenient than per-field record
// sanitization: there is no per-parameter customization, only a global
// length cap.
//
//	cfg, _ := httpmw.LoadConfig()
//	r := chi.NewRouter()
//	r.Use(httpmw.Query(cfg, slog.Default()))
package httpmw
