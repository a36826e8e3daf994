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

// Package test contains helper functions to remove common boilerplate from
// package tests.
//
// ExpectedFailure and ExpectedSuccess test for failure and success under
// generic conditions; see their documentation for the supported types.
//
// CompareWriter implements io.Writer and captures output for comparison
// with an expected string via Compare().
//
// Equate compares like-typed variables for equality. Some types (eg.
// uint16) can be compared against a literal int for convenience; see
// Equate's documentation for why.
package test
