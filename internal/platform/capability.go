package platform

import "strings"

// Capability describes the conventions anansi follows on a class of hosts.
type Capability struct {
	// Prefix is matched against the start of the platform identifier.
	// An empty prefix is the fallback row.
	Prefix string

	// WindowsLike selects Windows path and shell conventions.
	WindowsLike bool

	// Listing is the default directory listing command vector.
	Listing []string

	// OutputBase is the fixed base directory for the output file.
	// Empty means the user's home directory.
	OutputBase string
}

// DefaultCommand returns a copy of the listing command vector.
func (c Capability) DefaultCommand() []string {
	out := make([]string, len(c.Listing))
	copy(out, c.Listing)
	return out
}

// capabilities is ordered: the first matching prefix wins and the
// fallback row must be last.
var capabilities = []Capability{
	{
		Prefix:      "win",
		WindowsLike: true,
		Listing:     []string{"dir", "*.*"},
		OutputBase:  "C:/temp",
	},
	{
		Prefix:  "",
		Listing: []string{"ls", "-l", "."},
	},
}

// Lookup returns the capability row for a platform identifier such as
// runtime.GOOS ("linux", "windows") or a legacy identifier ("win32").
// Matching is case-insensitive. Lookup always returns a row.
func Lookup(id string) Capability {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, c := range capabilities {
		if strings.HasPrefix(id, c.Prefix) {
			return c
		}
	}
	return capabilities[len(capabilities)-1]
}

// Capabilities returns a copy of the capability table.
func Capabilities() []Capability {
	out := make([]Capability, len(capabilities))
	copy(out, capabilities)
	return out
}
