// Package logger builds *slog.Logger values for the tokenlib binaries.
//
// New takes functional options for level, format and output, adds static
// attributes, and wraps the handler in LogHandlerDecorator. The decorator
// masks attributes under sensitive keys ("secret", "token" and friends, see
// DefaultRedactedKeys) at any group depth, and attaches values stored in a
// context.Context to each record logged with that context.
//
// Attribute helpers in attr.go keep key names consistent. Fingerprint in
// particular should be used instead of logging token text.
//
// # Usage
//
//	import "github.com/dmitrymomot/tokenlib/pkg/logger"
//
//	log := logger.New(
//	    logger.WithTool("tokenctl"),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//	log.Debug("token verified", logger.Fingerprint(tok), logger.Candidate(1))
//
// Defaults are text output on stderr at INFO level.
package logger
