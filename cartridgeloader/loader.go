// This file is part of Gopheradvance.
//
// Gopheradvance is free software: you can redistribute it and/or modify
// it under the terms of the gnu general public license as published by
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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopheradvance/curated"
)

// Kind distinguishes the two image types the core accepts.
type Kind int

const (
	// ROM is a cartridge image, up to 32 MiB, mapped into the ROM region.
	ROM Kind = iota

	// BIOS is the fixed 16 KiB boot ROM mapped at address zero.
	BIOS
)

// maxSize returns the largest permitted image size for the receiver's Kind.
func (k Kind) maxSize() int64 {
	switch k {
	case BIOS:
		return 16 * 1024
	default:
		return 32 * 1024 * 1024
	}
}

func (k Kind) String() string {
	switch k {
	case BIOS:
		return "BIOS"
	default:
		return "ROM"
	}
}

// Loader specifies an image to be attached to the emulated GBA.
type Loader struct {
	// filename of the image to load. a bare filesystem path, or a URL with
	// an "http" or "https" scheme.
	Filename string

	// which region the image is destined for. governs the maximum
	// acceptable size and is used for diagnostics only; the loader performs
	// no format-specific parsing.
	Kind Kind

	// expected hash of the loaded image. empty string means the hash is
	// unknown and need not be validated. after a successful Load() the field
	// holds the hash of what was actually loaded.
	Hash string

	// copy of the loaded data. subsequent calls to Load() return without
	// re-reading if this is already populated.
	Data []byte
}

// NewROMLoader is the preferred method of initialisation for a cartridge
// image Loader.
func NewROMLoader(filename string) Loader {
	return Loader{Filename: filename, Kind: ROM}
}

// NewBIOSLoader is the preferred method of initialisation for a BIOS image
// Loader.
func NewBIOSLoader(filename string) Loader {
	return Loader{Filename: filename, Kind: BIOS}
}

// ShortName returns a shortened version of the Loader's filename, suitable
// for display or for deriving a companion save-file name.
func (cl Loader) ShortName() string {
	short := path.Base(cl.Filename)
	return strings.TrimSuffix(short, path.Ext(cl.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load reads the image data from the Loader's Filename, honouring an "http"
// or "https" scheme if present and falling back to a plain filesystem read
// otherwise. The resulting data is checked against Kind's size limit and,
// if set, against the expected Hash.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(cl.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var data []byte
	var err error

	switch scheme {
	case "http", "https":
		data, err = loadHTTP(cl.Filename)
	default:
		data, err = loadFile(cl.Filename)
	}
	if err != nil {
		return err
	}

	if int64(len(data)) > cl.Kind.maxSize() {
		return curated.Errorf("cartridgeloader: %s image %s exceeds maximum size of %d bytes", cl.Kind, cl.Filename, cl.Kind.maxSize())
	}

	if cl.Kind == BIOS && int64(len(data)) != cl.Kind.maxSize() {
		return curated.Errorf("cartridgeloader: BIOS image %s must be exactly %d bytes", cl.Filename, cl.Kind.maxSize())
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf("cartridgeloader: %v", "unexpected hash value")
	}

	cl.Data = data
	cl.Hash = hash

	return nil
}

func loadHTTP(filename string) ([]byte, error) {
	resp, err := http.Get(filename)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}
	return data, nil
}

func loadFile(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}
	return data, nil
}
