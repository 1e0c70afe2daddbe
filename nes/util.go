package nes

import (
	"fmt"
	"log"
	"regexp"
	"runtime"
	"time"
)

// TimeTrack logs how long its caller ran, identified by name via runtime
// reflection. Used to report per-frame timing from the run loop.
//
// https://stackoverflow.com/questions/45766572/is-there-an-efficient-way-to-calculate-execution-time-in-golang
func TimeTrack(start time.Time) {
	elapsed := time.Since(start)

	pc, _, _, _ := runtime.Caller(1)
	funcObj := runtime.FuncForPC(pc)

	runtimeFunc := regexp.MustCompile(`^.*\.(.*)$`)
	name := runtimeFunc.ReplaceAllString(funcObj.Name(), "$1")

	log.Println(fmt.Sprintf("%s took %s", name, elapsed))
}
