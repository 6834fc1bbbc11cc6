package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
)

// This converts arbitrary values (triangle ids, points, pointers) into random
// readable names. It flagrantly leaks memory but generates the names lazily, so
// it's not a problem unless you're actually using it. Triangle ids in
// particular are easier to follow through a debug log as "BraveOtter" than as
// "1093".
//
// Names are only stable within a run. Triangle slots are reused, so the same
// name can refer to several triangles over the course of a triangulation.

var (
	memo      map[interface{}]string
	memoMutex sync.Mutex
)

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	memoMutex.Lock()
	defer memoMutex.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

// Name, colored for a terminal. The color is picked from the name so the same
// object always shows in the same color.
func ColorName(obj interface{}) aurora.Value {
	name := Name(obj)
	var sum int
	for _, r := range name {
		sum += int(r)
	}
	colors := []func(interface{}) aurora.Value{
		aurora.Red, aurora.Green, aurora.Yellow, aurora.Blue, aurora.Magenta, aurora.Cyan,
	}
	return colors[sum%len(colors)](name)
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	switch v := reflect.ValueOf(obj); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}
