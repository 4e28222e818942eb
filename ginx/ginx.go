/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package ginx connects outcomes to gin handlers.
//
//	r := gin.New()
//	r.Use(ginx.CorrelationID(), ginx.Recovery(w))
//	r.GET("/users/:id", ginx.Handle(w, func(c *gin.Context) apis.Outcome {
//		return svc.Get(c.Request.Context(), c.Param("id"))
//	}))
package ginx

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/httpx"
)

const (
	// HeaderCorrelationID is read from requests and echoed on responses.
	HeaderCorrelationID = "X-Correlation-Id"

	correlationKey = "dresult.correlation_id"
)

// Handle adapts a function returning an outcome into a gin handler.
func Handle(w httpx.Writer, fn func(*gin.Context) apis.Outcome) gin.HandlerFunc {
	return func(c *gin.Context) {
		Respond(c, w, fn(c))
	}
}

// Respond writes o through w and aborts the handler chain when it is a
// failure.
func Respond(c *gin.Context, w httpx.Writer, o apis.Outcome) {
	if o == nil {
		return
	}
	w.Write(c.Writer, o)
	if o.Status().IsFailure() {
		c.Abort()
	}
}

// CorrelationID stores the request's X-Correlation-Id, or a fresh UUID when
// absent, in the context and echoes it on the response.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderCorrelationID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(correlationKey, id)
		c.Header(HeaderCorrelationID, id)
		c.Next()
	}
}

// CorrelationIDFrom returns the id stored by CorrelationID, or "".
func CorrelationIDFrom(c *gin.Context) string {
	return c.GetString(correlationKey)
}

// Recovery turns a panic in a later handler into a CriticalError outcome.
// The panic value is logged, never exposed.
func Recovery(w httpx.Writer) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				if w.Logger != nil {
					w.Logger.Error().Interface("panic", rec).Str("path", c.Request.URL.Path).
						Str("correlation_id", CorrelationIDFrom(c)).Msg("handler panicked")
				}
				Respond(c, w, dresult.CriticalError("internal error"))
			}
		}()
		c.Next()
	}
}
