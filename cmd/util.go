package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/profile"
)

func stderrPrintLnf(message string, args ...interface{}) error {
	if !strings.HasSuffix(message, "\n") {
		message += "\n"
	}
	_, err := fmt.Fprintf(os.Stderr, message, args...)
	return err
}

// startProfiling starts the profiler selected in the dev config section; the returned function stops it.
func startProfiling() func() {
	switch {
	case appConfig.Dev.ProfileCPU:
		return profile.Start(profile.CPUProfile).Stop
	case appConfig.Dev.ProfileMem:
		return profile.Start(profile.MemProfile).Stop
	}
	return func() {}
}
