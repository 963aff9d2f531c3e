// Copyright 2023 Lack (xingyys@gmail.com).
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package converter

import (
	"fmt"
	"sync"

	log "github.com/vine-io/vine/lib/logger"
)

// Level is the severity of a diagnostic.
type Level int32

const (
	LevelInfo Level = iota + 1
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic reports a problem with one element. Conversion goes on without
// the element.
type Diagnostic struct {
	Level     Level
	ElementID string
	Message   string
}

func (d Diagnostic) String() string {
	if d.ElementID == "" {
		return fmt.Sprintf("[%s] %s", d.Level, d.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", d.Level, d.ElementID, d.Message)
}

// Diagnostics collects the diagnostics of one conversion and mirrors them
// to the logger.
type Diagnostics struct {
	sync.Mutex
	items []Diagnostic
}

func (d *Diagnostics) add(level Level, id, format string, args ...interface{}) {
	item := Diagnostic{Level: level, ElementID: id, Message: fmt.Sprintf(format, args...)}
	switch level {
	case LevelInfo:
		log.Infof("%s", item)
	case LevelWarn:
		log.Warnf("%s", item)
	default:
		log.Errorf("%s", item)
	}
	if d == nil {
		return
	}

	d.Lock()
	d.items = append(d.items, item)
	d.Unlock()
}

func (d *Diagnostics) Infof(id, format string, args ...interface{}) {
	d.add(LevelInfo, id, format, args...)
}

func (d *Diagnostics) Warnf(id, format string, args ...interface{}) {
	d.add(LevelWarn, id, format, args...)
}

func (d *Diagnostics) Errorf(id, format string, args ...interface{}) {
	d.add(LevelError, id, format, args...)
}

// Items returns a copy of the collected diagnostics.
func (d *Diagnostics) Items() []Diagnostic {
	d.Lock()
	defer d.Unlock()
	out := make([]Diagnostic, len(d.items))
	copy(out, d.items)
	return out
}

// Count returns the number of diagnostics at the level.
func (d *Diagnostics) Count(level Level) int {
	d.Lock()
	defer d.Unlock()
	n := 0
	for _, item := range d.items {
		if item.Level == level {
			n++
		}
	}
	return n
}
