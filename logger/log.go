package logger

import (
	"fmt"
	"io"
	"log"
	"regexp"
	"sync/atomic"

	"github.com/cornelk/hashmap"
)

const (
	ERROR   = 1
	INFO    = 2
	VERBOSE = 3
	DEBUG   = 7
)

var tags = map[int]string{
	ERROR:   "ERROR ",
	VERBOSE: "VERBOSE ",
	DEBUG:   "DEBUG ",
}

var (
	level   = INFO
	limiter int
	filter  *regexp.Regexp
	seen    *hashmap.HashMap
)

func init() {
	seen = &hashmap.HashMap{}
	log.SetFlags(0)
}

func SetLevel(l int) {
	level = l
}

// SetLimiter caps how many times the same verbose or debug line is printed,
// zero means no cap. Counters are kept across calls.
func SetLimiter(l int) {
	limiter = l
}

func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// SetFilter takes an RE2 pattern, only matching verbose and debug lines are
// printed. An empty pattern removes the filter.
func SetFilter(pattern string) error {
	if pattern == "" {
		filter = nil
		return nil
	}
	reg, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	filter = reg
	return nil
}

func Println(v ...interface{}) {
	if level >= INFO {
		log.Println(v...)
	}
}

func Printf(format string, v ...interface{}) {
	if level >= INFO {
		log.Printf(format, v...)
	}
}

func Errorf(format string, v ...interface{}) {
	if level >= ERROR {
		log.Print(tags[ERROR] + fmt.Sprintf(format, v...))
	}
}

func Verbosef(format string, v ...interface{}) {
	emit(VERBOSE, fmt.Sprintf(format, v...))
}

func Debugf(format string, v ...interface{}) {
	emit(DEBUG, fmt.Sprintf(format, v...))
}

func emit(l int, line string) {
	if level < l || !matches(line) || !admit(line) {
		return
	}
	log.Print(tags[l] + line)
}

func matches(line string) bool {
	return filter == nil || filter.MatchString(line)
}

func admit(line string) bool {
	if limiter <= 0 {
		return true
	}
	val, _ := seen.GetOrInsert(line, new(int64))
	return atomic.AddInt64(val.(*int64), 1) <= int64(limiter)
}
