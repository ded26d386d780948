package dist

import "fmt"

const (
	// DefaultServerURL is the official Rust distribution server.
	DefaultServerURL = "https://static.rust-lang.org"
	// DefaultUserAgent is the User-Agent header sent with requests.
	DefaultUserAgent = "dtolnay/fast-rustup"
)

// Archive formats published by the distribution server.
const (
	FormatXZ = "xz"
	FormatGZ = "gz"
)

// Component is one independently fetched archive contributing files under
// one named subtree of the installed toolchain.
type Component struct {
	// Name is the archive base name (e.g. "cargo", "rust-std").
	Name string
	// Subdir is the subtree inside the archive holding this component's
	// files (e.g. "cargo", "rust-std-x86_64-unknown-linux-gnu").
	Subdir string
}

// Archive returns the archive filename for a nightly build of this
// component, e.g. "cargo-nightly-x86_64-unknown-linux-gnu.tar.xz".
func (c Component) Archive(target, format string) string {
	return fmt.Sprintf("%s-nightly-%s.tar.%s", c.Name, target, format)
}

// Components returns the fixed component set of a nightly toolchain for
// the given target triple. The rust-std subtree embeds the triple; all
// other subtrees are target-independent.
func Components(target string) []Component {
	return []Component{
		{Name: "cargo", Subdir: "cargo"},
		{Name: "clippy", Subdir: "clippy-preview"},
		{Name: "rust-docs", Subdir: "rust-docs"},
		{Name: "rust-std", Subdir: "rust-std-" + target},
		{Name: "rustc", Subdir: "rustc"},
		{Name: "rustfmt", Subdir: "rustfmt-preview"},
	}
}

// Config holds immutable distribution settings.
type Config struct {
	// ServerURL is the distribution server base URL, without trailing slash.
	ServerURL string
	// UserAgent is sent with every request.
	UserAgent string
	// Format selects the archive compression: FormatXZ or FormatGZ.
	Format string
}

// DefaultConfig returns the standard distribution settings.
func DefaultConfig() Config {
	return Config{
		ServerURL: DefaultServerURL,
		UserAgent: DefaultUserAgent,
		Format:    FormatXZ,
	}
}

// ComponentURL forms the download URL for one component archive of a
// dated nightly: <server>/dist/<date>/<archive>.
func (c Config) ComponentURL(date, archive string) string {
	return fmt.Sprintf("%s/dist/%s/%s", c.ServerURL, date, archive)
}
