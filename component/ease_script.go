package component

import (
	"fmt"
	"math"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/magus/common"
)

// ScriptEase is an easing curve written in tengo. The script reads the
// global `t` (progress in [0,1]) and must assign the global `out`:
//
//	math := import("math")
//	out := 1 - math.pow(1 - t, 4)
//
// Only the tengo math module is importable.
type ScriptEase struct {
	Name string

	mu       sync.Mutex
	compiled *tengo.Compiled
}

// CompileScriptEase compiles src and checks that it defines `out`.
func CompileScriptEase(name string, src []byte) (*ScriptEase, error) {
	script := tengo.NewScript(src)
	if err := script.Add("t", 0.0); err != nil {
		return nil, err
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ease script %s: %w", name, err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("ease script %s: %w", name, err)
	}
	if !compiled.IsDefined("out") {
		return nil, fmt.Errorf("ease script %s: global `out` is not defined", name)
	}
	return &ScriptEase{Name: name, compiled: compiled}, nil
}

// Apply runs the script for t. Runtime failures fall back to linear.
func (s *ScriptEase) Apply(t float64) float64 {
	t = common.Clamp01(t)
	if s == nil || s.compiled == nil {
		return t
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.compiled.Set("t", t); err != nil {
		return t
	}
	if err := s.compiled.Run(); err != nil {
		return t
	}
	out := s.compiled.Get("out").Float()
	if math.IsNaN(out) || math.IsInf(out, 0) {
		return t
	}
	return out
}

func (s *ScriptEase) String() string {
	if s == nil {
		return "script(<nil>)"
	}
	return "script(" + s.Name + ")"
}
