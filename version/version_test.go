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

package version_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/version"
)

// number is only set by the makefile via -ldflags, so under "go test" it is
// always empty and Version() falls back to "unreleased" or "local".
func TestVersionFallsBackWhenNotBuiltWithMakefile(t *testing.T) {
	v, _, release := version.Version()

	if v != "unreleased" && v != "local" {
		t.Errorf("expected an unreleased/local fallback version, got %q", v)
	}
	if release {
		t.Errorf("a fallback build should never report itself as a release")
	}
}

func TestVersionAlwaysReportsARevisionString(t *testing.T) {
	_, revision, _ := version.Version()
	if revision == "" {
		t.Errorf("revision should never be empty, expected a placeholder string at minimum")
	}
}

func TestApplicationNameIsSet(t *testing.T) {
	if version.ApplicationName == "" {
		t.Errorf("ApplicationName should not be empty")
	}
}
