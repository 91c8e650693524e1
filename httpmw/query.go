package httpmw

import (
	"log/slog"
	"net/http"

	"github.com/bandkit/sanitize"
)

// Query returns middleware that sanitizes every string query parameter with
// the SEARCH preset before the request reaches the handler. Modified values
// are rewritten into the request URL; the handler only ever sees clean input.
func Query(cfg Config, log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}

	opts := sanitize.PresetSearch
	opts.MaxLength = cfg.MaxQueryLength

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			changed := false

			for key, values := range query {
				for i, value := range values {
					res := sanitize.Sanitize(value, opts)
					if !res.Modified {
						continue
					}
					values[i] = res.Value
					changed = true
					if cfg.LogModified {
						log.WarnContext(r.Context(), "sanitized query parameter",
							slog.String("param", key),
							slog.Any("issues", res.Issues),
						)
					}
				}
				query[key] = values
			}

			if changed {
				r.URL.RawQuery = query.Encode()
			}
			next.ServeHTTP(w, r)
		})
	}
}
