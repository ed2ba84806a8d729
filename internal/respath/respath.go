// Package respath locates model and background assets on disk. The lookup
// order is deliberate policy that users rely on; see Resolve.
package respath

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/floe/go-backscrub/internal/config"
	"github.com/floe/go-backscrub/internal/logger"
)

// RFC 3986 scheme, but requiring at least two characters so a Windows
// drive letter never parses as a scheme.
var uriRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+\-.]+:`)

// Config carries everything the resolver needs from the process
// environment, sourced once at startup so the lookup logic itself never
// touches globals.
type Config struct {
	// SearchPath is a colon-separated list of prefixes, usually from
	// BACKSCRUB_PATH.
	SearchPath string
	// DataHome is XDG_DATA_HOME; when empty, Home/.local/share is used.
	DataHome string
	Home     string
	// InstallPrefix is the build-time install location.
	InstallPrefix string
	// Executable resolves the running binary's own path. Defaults to
	// os.Executable; swappable for tests.
	Executable func() (string, error)
}

// FromEnv snapshots the process environment into a Config.
func FromEnv() Config {
	return Config{
		SearchPath:    os.Getenv(config.EnvSearchPath),
		DataHome:      os.Getenv(config.EnvDataHome),
		Home:          os.Getenv(config.EnvHome),
		InstallPrefix: config.InstallPrefix,
	}
}

type Resolver struct {
	cfg Config
}

func New(cfg Config) *Resolver {
	if cfg.Executable == nil {
		cfg.Executable = os.Executable
	}
	return &Resolver{cfg: cfg}
}

// Resolve turns a user-provided asset name plus a category folder (e.g.
// "models") into a readable path, probing candidates in a fixed order and
// returning the first hit:
//
//  1. a URI (two-plus character scheme) is returned as-is, untouched
//  2. the name itself, if openable
//  3. nothing more if the name contains a path separator - an explicit
//     path never gets silently substituted by a search hit
//  4. each SearchPath prefix as prefix/category/name
//  5. the XDG data dir as <data>/backscrub/category/name
//  6. the install prefix as <prefix>/share/backscrub/category/name
//  7. two levels up from the binary, share/backscrub/category/name
//  8. same prefix without share/backscrub, for uninstalled source trees
//
// A probe is a plain open-for-read check; missing files and permission
// errors both count as a miss. The second return is false when every
// candidate missed.
func (r *Resolver) Resolve(provided, category string) (string, bool) {
	log := logger.WithScope("respath")

	if uriRe.MatchString(provided) {
		return provided, true
	}

	if readable(provided) {
		return provided, true
	}

	if strings.ContainsRune(provided, '/') {
		log.Debugf("explicit path %q not readable, not searching further", provided)
		return "", false
	}

	if r.cfg.SearchPath != "" {
		for _, prefix := range strings.Split(r.cfg.SearchPath, ":") {
			if prefix == "" {
				continue
			}
			p := filepath.Join(prefix, category, provided)
			if readable(p) {
				return p, true
			}
		}
	}

	dataHome := r.cfg.DataHome
	if dataHome == "" {
		dataHome = filepath.Join(r.cfg.Home, ".local", "share")
	}
	if p := filepath.Join(dataHome, config.AppDir, category, provided); readable(p) {
		return p, true
	}

	if p := filepath.Join(r.cfg.InstallPrefix, "share", config.AppDir, category, provided); readable(p) {
		return p, true
	}

	binPrefix, ok := r.binaryPrefix()
	if !ok {
		return "", false
	}

	if p := filepath.Join(binPrefix, "share", config.AppDir, category, provided); readable(p) {
		return p, true
	}

	// development tree, running straight out of the build dir
	if p := filepath.Join(binPrefix, category, provided); readable(p) {
		return p, true
	}

	return "", false
}

// binaryPrefix strips the binary name and its bin/ directory off the
// executable's own path. The self-path lookup can fail or come back too
// short; both just mean "no such prefix".
func (r *Resolver) binaryPrefix() (string, bool) {
	bin, err := r.cfg.Executable()
	if err != nil {
		logger.WithScope("respath").Debugf("cannot resolve own path: %v", err)
		return "", false
	}

	dir := filepath.Dir(bin)
	prefix := filepath.Dir(dir)
	if prefix == dir || prefix == "." {
		return "", false
	}
	return prefix, true
}

func readable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
