package middleware

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"requestprofiler/internal/config"
	"requestprofiler/internal/profiler"
)

// EnvFlag force-enables CPU sampling for every request when set to "true".
// It is read per request so the flag can be flipped on a running process.
const EnvFlag = "PROFILER_ENABLED"

type EntryRecorder interface {
	Record(e profiler.Entry)
}

type CPUSampler interface {
	CPUTimeMs() (float64, error)
}

// Profiler measures every request and records exactly one entry per request,
// on success, handler-error and panic paths alike. Errors and panics keep
// propagating to the framework untouched; a request that failed before
// producing a response is recorded with status 500.
//
// CPU sampling is decided per request from three signals. An explicit
// "?profile=false" overrides a default-enabled profiler; "?profile=true" or
// PROFILER_ENABLED=true overrides a default-disabled one. Requests where
// sampling is inactive (or the sampler is unavailable) carry CPUTimeMs 0.0.
func Profiler(store EntryRecorder, cfg *config.ProfilerConfig, sampler CPUSampler, logger *slog.Logger) echo.MiddlewareFunc {
	queryParam := cfg.QueryParam
	if queryParam == "" {
		queryParam = "profile"
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			active := samplingActive(cfg.EnableByDefault, c.QueryParam(queryParam))

			var cpuStart float64
			cpuOK := false
			if active && sampler != nil {
				v, err := sampler.CPUTimeMs()
				if err != nil {
					logger.Warn("cpu sampler failed, cpu time degraded to zero",
						slog.String("error", err.Error()))
				} else {
					cpuStart = v
					cpuOK = true
				}
			}

			start := time.Now()

			var err error
			panicked := true
			defer func() {
				cpuMs := 0.0
				if cpuOK {
					if v, sErr := sampler.CPUTimeMs(); sErr == nil && v > cpuStart {
						cpuMs = roundMillis(v - cpuStart)
					}
				}

				status := c.Response().Status
				if panicked {
					status = http.StatusInternalServerError
				} else if err != nil {
					status = http.StatusInternalServerError
					var he *echo.HTTPError
					if errors.As(err, &he) {
						status = he.Code
					}
				}

				store.Record(profiler.Entry{
					Timestamp:   time.Now(),
					Path:        c.Request().URL.Path,
					Method:      c.Request().Method,
					StatusCode:  status,
					TotalTimeMs: roundMillis(float64(time.Since(start).Microseconds()) / 1000.0),
					CPUTimeMs:   cpuMs,
				})
			}()

			err = next(c)
			panicked = false
			return err
		}
	}
}

// samplingActive applies the activation precedence: a per-request "false"
// beats a default-enabled profiler; a per-request "true" or the environment
// flag beats a default-disabled one.
func samplingActive(defaultEnabled bool, queryValue string) bool {
	v := strings.ToLower(queryValue)
	if defaultEnabled {
		return v != "false"
	}
	return v == "true" || strings.EqualFold(os.Getenv(EnvFlag), "true")
}

func roundMillis(v float64) float64 {
	if v < 0 {
		return 0
	}
	return math.Round(v*1000) / 1000
}
