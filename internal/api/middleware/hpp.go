package middleware

import (
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

// HPP strips HTTP parameter pollution: when a query or form parameter
// is supplied more than once, only the first occurrence survives.
// Handlers downstream can then bind parameters without worrying about
// array-smuggling through repeated keys. JSON bodies are untouched;
// object keys are single-valued by construction.
func HPP() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			if query := req.URL.Query(); hasDuplicates(query) {
				req.URL.RawQuery = firstValues(query).Encode()
			}

			ct := req.Header.Get(echo.HeaderContentType)
			if strings.HasPrefix(ct, echo.MIMEApplicationForm) {
				if err := req.ParseForm(); err == nil && hasDuplicates(req.PostForm) {
					req.PostForm = firstValues(req.PostForm)
				}
			}

			return next(c)
		}
	}
}

func hasDuplicates(values url.Values) bool {
	for _, vs := range values {
		if len(vs) > 1 {
			return true
		}
	}
	return false
}

func firstValues(values url.Values) url.Values {
	out := make(url.Values, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			out[k] = vs[:1]
		}
	}
	return out
}
