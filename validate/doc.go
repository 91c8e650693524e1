// Package validate turns sanitization results into validation failures:
// input that the engine had to modify was not already clean, and the audit
// trail becomes the user-facing error message.
//
//	err := validate.Apply(
//	    validate.Clean("name", req.Name, sanitize.PresetName),
//	    validate.Clean("video_url", req.VideoURL, sanitize.PresetYouTubeURL),
//	)
//	if fieldErrs := validate.ExtractFieldErrors(err); len(fieldErrs) > 0 {
//	    // render fieldErrs to the client
//	}
package validate
