// Copyright 2025 go-highway Authors
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

package main

import (
	"math/rand"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/tilekernel/hwygemm/hwy"
)

// selectLevels returns the supported levels matching name, which is either
// "all" or a level name.
func selectLevels(name string) ([]hwy.DispatchLevel, error) {
	if name != "all" {
		if _, ok := hwy.ParseDispatchLevel(name); !ok {
			names := lo.Map(hwy.AllLevels(), func(level hwy.DispatchLevel, _ int) string { return level.String() })
			return nil, errors.Errorf("unknown level %q, want all or one of %s", name, strings.Join(names, ", "))
		}
	}
	levels := lo.Filter(hwy.SupportedLevels(), func(level hwy.DispatchLevel, _ int) bool {
		return name == "all" || strings.EqualFold(level.String(), name)
	})
	if len(levels) == 0 {
		return nil, errors.Errorf("level %s is not supported on this CPU, highest is %s", name, hwy.CurrentLevel())
	}
	return levels, nil
}

func checkDims(m, p, n int) error {
	if m <= 0 || p <= 0 || n <= 0 {
		return errors.Errorf("dimensions must be positive, got m=%d p=%d n=%d", m, p, n)
	}
	return nil
}

func randomSlice[T hwy.Floats](rng *rand.Rand, size int) []T {
	return lo.Times(size, func(int) T { return T(rng.Float64()*2 - 1) })
}
