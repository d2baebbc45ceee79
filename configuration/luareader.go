// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"reflect"

	"github.com/pkg/errors"
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/thortx/fault"
)

// ParseConfigurationFile - read and execute a Lua file and assign
// the resulting table to a configuration structure
func ParseConfigurationFile(fileName string, config interface{}) error {
	return parse(fileName, config, func(L *lua.LState) error {
		return L.DoFile(fileName)
	})
}

// ParseConfigurationString - as ParseConfigurationFile but the Lua
// source is given directly, arg[0] is set to name
func ParseConfigurationString(name string, source string, config interface{}) error {
	return parse(name, config, func(L *lua.LState) error {
		return L.DoString(source)
	})
}

func parse(name string, config interface{}, execute func(*lua.LState) error) error {

	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// create the global "arg" table
	// arg[0] = config file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(name))
	L.SetGlobal("arg", arg)

	// execute configuration
	if err := execute(L); nil != err {
		return errors.Wrap(err, name)
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fault.ErrConfigurationNotTable
	}

	mapperOption := gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	}
	mapper := gluamapper.Mapper{Option: mapperOption}
	if err := mapper.Map(table, config); nil != err {
		return errors.Wrap(err, name)
	}
	return nil
}
