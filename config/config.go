// Package config loads machine configuration from starlark files.
//
// A configuration file is ordinary starlark whose top-level integer
// bindings override the machine defaults:
//
//	org_offset = 0x4000   # code segment offset, in words
//	user_timeout = 100    # per-run wall clock budget, in milliseconds
//	memory_size = 0x10000 # memory size, in words
//	stack_bottom = 0xffff # initial SP and BP
//
// Missing keys keep their defaults and unknown keys are ignored, so a
// file only has to name what it changes.
package config

import (
	"time"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"botvm/cpu"
)

// Load evaluates the starlark file at path and overlays its bindings
// onto cpu.DefaultConfig().
func Load(path string) (conf cpu.Config, err error) {
	conf = cpu.DefaultConfig()

	opts := syntax.FileOptions{}
	thread := starlark.Thread{Name: "config"}
	globals, err := starlark.ExecFileOptions(&opts, &thread, path, nil, nil)
	if err != nil {
		return
	}

	err = intKey(globals, "org_offset", &conf.OrgOffset)
	if err != nil {
		return
	}
	err = intKey(globals, "memory_size", &conf.MemorySize)
	if err != nil {
		return
	}
	err = intKey(globals, "stack_bottom", &conf.StackBottom)
	if err != nil {
		return
	}

	ms := int(conf.Timeout / time.Millisecond)
	err = intKey(globals, "user_timeout", &ms)
	if err != nil {
		return
	}
	conf.Timeout = time.Duration(ms) * time.Millisecond

	return
}

// intKey overwrites *out when key is bound in globals.
func intKey(globals starlark.StringDict, key string, out *int) (err error) {
	global, ok := globals[key]
	if !ok {
		return
	}

	st_int, ok := global.(starlark.Int)
	if !ok {
		err = ErrConfigValue(key)
		return
	}

	v64, ok := st_int.Int64()
	if !ok {
		err = ErrConfigValue(key)
		return
	}

	*out = int(v64)
	return
}
