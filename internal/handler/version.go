package handler

import (
	"net/http"
	"os"
	"runtime"

	"github.com/osse101/GardenIdle_Go/internal/event"
	"github.com/osse101/GardenIdle_Go/internal/persistence"
)

// VersionInfo describes the running build and the data formats it speaks.
// Front ends compare SaveSchema before offering an import.
type VersionInfo struct {
	Version     string `json:"version"`
	GoVersion   string `json:"go_version"`
	BuildTime   string `json:"build_time,omitempty"`
	GitCommit   string `json:"git_commit,omitempty"`
	SaveSchema  int    `json:"save_schema"`
	EventSchema string `json:"event_schema"`
}

// Build-time variables, set with -ldflags -X
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unset"
)

// HandleVersion reports the build and format versions
func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Version:     versionString(),
			GoVersion:   runtime.Version(),
			BuildTime:   BuildTime,
			GitCommit:   GitCommit,
			SaveSchema:  persistence.SchemaVersion,
			EventSchema: event.EventSchemaVersion,
		})
	}
}

// versionString prefers the build-time value, then $VERSION
func versionString() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}
