package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// RequestLogger assigns request id and logs every handled request through logrus
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()

			reqID := req.Header.Get(echo.HeaderXRequestID)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			res.Header().Set(echo.HeaderXRequestID, reqID)

			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			entry := logrus.WithFields(logrus.Fields{
				"requestId": reqID,
				"method":    req.Method,
				"uri":       req.RequestURI,
				"status":    res.Status,
				"latency":   time.Since(start).String(),
			})

			if res.Status >= 500 {
				entry.Error("request failed")
			} else {
				entry.Info("request handled")
			}
			return nil
		}
	}
}
