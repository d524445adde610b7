package handler

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/paramguard/pkg/logger"
	"github.com/dmitrymomot/paramguard/pkg/requestid"
	"github.com/dmitrymomot/paramguard/pkg/xmlout"
)

// Logging records the outcome and duration of every business-logic call.
//
//	handler.MustWrap(getUser,
//		handler.WithDecorators(handler.Logging[handler.Context](log)),
//	)
func Logging[C Context](log *slog.Logger) Decorator[C] {
	if log == nil {
		log = slog.Default()
	}
	return func(next HandlerFunc[C]) HandlerFunc[C] {
		return func(ctx C, req *Request, out *xmlout.Writer) (int, error) {
			start := time.Now()
			status, err := next(ctx, req, out)

			attrs := []slog.Attr{
				logger.RequestID(requestid.FromContext(ctx)),
				slog.String("method", req.HTTPRequest().Method),
				slog.String("path", req.Path()),
				logger.Duration(time.Since(start)),
			}
			if err != nil {
				if reqErr, ok := AsRequestError(err); ok {
					attrs = append(attrs, logger.Status(reqErr.Status))
				}
				attrs = append(attrs, logger.Error(err))
				log.LogAttrs(ctx, slog.LevelWarn, "handler returned error", attrs...)
				return status, err
			}

			attrs = append(attrs, logger.Status(status))
			log.LogAttrs(ctx, slog.LevelInfo, "handler completed", attrs...)
			return status, nil
		}
	}
}
