// This file is part of Gopheradvance.
//
// Gopheradvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopheradvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopheradvance.  If not, see <https://www.gnu.org/licenses/>.

package paths_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopheradvance/paths"
)

// ResourcePath's base component depends on the filesystem (a
// ".gopheradvance" directory in the current directory, falling back to the
// user's config directory), so these tests only assert the join behaviour
// of the resource segments against whatever base is resolved.
func TestResourcePathJoinsSegments(t *testing.T) {
	got := paths.ResourcePath("foo/bar", "baz")
	if !strings.HasSuffix(got, "foo/bar/baz") {
		t.Errorf("expected suffix foo/bar/baz, got %s", got)
	}
}

func TestResourcePathSkipsEmptySegments(t *testing.T) {
	got := paths.ResourcePath("foo/bar", "")
	if !strings.HasSuffix(got, "foo/bar") {
		t.Errorf("expected suffix foo/bar, got %s", got)
	}

	got = paths.ResourcePath("", "baz")
	if !strings.HasSuffix(got, "baz") {
		t.Errorf("expected suffix baz, got %s", got)
	}
}

func TestResourcePathWithNoSegmentsIsJustTheBase(t *testing.T) {
	got := paths.ResourcePath()
	if strings.Contains(got, "/") == false {
		// still fine: base paths under the home directory contain slashes.
		// what matters is that no trailing separator or empty segment leaks
		// in.
		return
	}
	if strings.HasSuffix(got, "/") {
		t.Errorf("unexpected trailing separator: %s", got)
	}
}

func TestUniqueFilenameIncludesCartNameAndPrepend(t *testing.T) {
	got := paths.UniqueFilename("recording", "Zelda")
	if !strings.HasPrefix(got, "recording_Zelda_") {
		t.Errorf("expected prefix recording_Zelda_, got %s", got)
	}
}

func TestUniqueFilenameOmitsCartNameWhenBlank(t *testing.T) {
	got := paths.UniqueFilename("recording", "  ")
	if strings.Contains(got, "__") {
		t.Errorf("expected no double separator for a blank cart name, got %s", got)
	}
	if !strings.HasPrefix(got, "recording_") {
		t.Errorf("expected prefix recording_, got %s", got)
	}
}
