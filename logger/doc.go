// Package logger provides slog attribute helpers with consistent keys
// across the module. Helpers return an empty Attr for nil or empty
// input, so they are safe to pass unconditionally:
//
//	log.Info("request handled",
//		logger.Method(r.Method),
//		logger.Path(r.URL.Path),
//		logger.Error(err), // dropped when err is nil
//	)
package logger
