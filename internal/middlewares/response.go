package middlewares

import (
	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/ghttp"
	"github.com/gogf/gf/v2/util/gconv"

	"knscribe-service/internal/codes"
)

// Response writes the canonical JSON envelope: handler results are merged
// with {"success":true}; failures become {"success":false,"message":...}
// with the HTTP status derived from the error code.
func Response(r *ghttp.Request) {
	r.Middleware.Next()

	// A handler already streamed its own body (files, redirects).
	if r.Response.BufferLength() > 0 {
		return
	}

	if err := r.GetError(); err != nil {
		code := gerror.Code(err)
		status := codes.HTTPStatus(code)
		message := err.Error()
		if status >= 500 {
			// Internal diagnostics stay in the log; callers get the
			// top-level message only.
			g.Log().Errorf(r.Context(), "request failed: %+v", err)
			if cur := gerror.Current(err); cur != nil {
				message = cur.Error()
			}
		}
		r.Response.ClearBuffer()
		r.Response.WriteHeader(status)
		r.Response.WriteJson(g.Map{
			"success": false,
			"message": message,
		})
		return
	}

	payload := gconv.Map(r.GetHandlerResponse())
	if payload == nil {
		payload = g.Map{}
	}
	payload["success"] = true
	r.Response.WriteJson(payload)
}
