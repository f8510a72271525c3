// Copyright 2024 Google LLC
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

package fmterr_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/gx-org/primexpr/build/fmterr"
)

func TestCatch(t *testing.T) {
	err := fmterr.Catch(func() {
		panic(fmterr.Fatalf("cannot decide %s for type %s", "max_value", "bool"))
	})
	if err == nil {
		t.Fatal("expected an error but got nil")
	}
	var fatal *fmterr.Fatal
	if !errors.As(err, &fatal) {
		t.Errorf("got error %T but want %T", err, fatal)
	}
	if got, want := err.Error(), "cannot decide max_value for type bool"; got != want {
		t.Errorf("got error %q but want %q", got, want)
	}
	if got := fmt.Sprintf("%+v", err); !strings.Contains(got, "TestCatch") {
		t.Errorf("stack trace missing from %q", got)
	}
}

func TestCatchNoError(t *testing.T) {
	if err := fmterr.Catch(func() {}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCatchOtherPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != "other" {
			t.Errorf("got panic value %v but want %q", r, "other")
		}
	}()
	fmterr.Catch(func() { panic("other") })
	t.Error("panic has not been propagated")
}

func TestCheck(t *testing.T) {
	if err := fmterr.Catch(func() { fmterr.Check(true, "never") }); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := fmterr.Catch(func() { fmterr.Check(1 > 2, "shift amount %d out of range", 2) })
	if err == nil || err.Error() != "shift amount 2 out of range" {
		t.Errorf("got %v but want a shift error", err)
	}
}

func TestTry(t *testing.T) {
	got, err := fmterr.Try(func() int { return 4 })
	if err != nil || got != 4 {
		t.Errorf("got %d, %v but want 4, nil", got, err)
	}
	_, err = fmterr.Try(func() int { panic(fmterr.Fatalf("bad")) })
	if err == nil {
		t.Error("expected an error but got nil")
	}
}
