package middleware

import (
	"fmt"
	"net/http"
	"runtime"

	"github.com/rohits-web03/medrecords/internal/utils"
	"github.com/rs/zerolog"
)

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rv := recover()
			if rv == nil {
				return
			}
			if rv == http.ErrAbortHandler {
				panic(rv)
			}

			var stack [4096]byte
			n := runtime.Stack(stack[:], false)
			zerolog.Ctx(r.Context()).Error().
				Str("panic", fmt.Sprintf("%v", rv)).
				Str("stack", string(stack[:n])).
				Msg("panic recovered")

			utils.Error(w, http.StatusInternalServerError, "internal server error")
		}()
		next.ServeHTTP(w, r)
	})
}
