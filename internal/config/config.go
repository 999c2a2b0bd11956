// Package config holds globally available configuration variables, either
// set by compiled-in defaults or overridden by a config.toml file.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfFile is the path to the config file, relative to the working directory.
var ConfFile = "./config.toml"

// Settings is the global configuration, populated by Setup.
var Settings conf

var initialized = false

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
	Book   bookConfiguration
}

// Setup reads the configuration file (if present) over the compiled-in
// defaults set by each sub-config's init(). Safe to call more than once.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config file not found, using defaults:", err)
	}
	initialized = true
}

// String renders the current settings for diagnostic logging, using
// reflection the way the teacher's config.go inspects its sub-structs.
func (c *conf) String() string {
	var sb strings.Builder
	for name, v := range map[string]interface{}{
		"Search": &c.Search,
		"Eval":   &c.Eval,
		"Book":   &c.Book,
	} {
		sb.WriteString(name + " Config:\n")
		s := reflect.ValueOf(v).Elem()
		t := s.Type()
		for i := 0; i < s.NumField(); i++ {
			f := s.Field(i)
			sb.WriteString(fmt.Sprintf("%-2d: %-22s %-8s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
