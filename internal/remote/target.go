package remote

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrInvalidArgument is returned when a load target cannot be interpreted as
// an absolute URL or a path relative to the local content base.
var ErrInvalidArgument = errors.New("invalid argument")

// contentHost is the fixed host serving the controller's bundled content.
const contentHost = "127.0.0.1"

// LocalBase returns the base address content-relative load targets resolve
// against: http://127.0.0.1:<port>/.
func LocalBase(port int) *url.URL {
	return &url.URL{
		Scheme: "http",
		Host:   fmt.Sprintf("%s:%d", contentHost, port),
		Path:   "/",
	}
}

// normalizeTarget converts a load target into the fully-qualified form sent
// to the host. An absolute URL is emitted in its canonical string form; a
// relative path is joined to the base address. An empty target passes through
// untouched (the host shows its default page). Anything that parses as
// neither fails with ErrInvalidArgument naming the original input.
func normalizeTarget(raw string, base *url.URL) (string, error) {
	if raw == "" {
		return "", nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: load target %q", ErrInvalidArgument, raw)
	}
	if u.IsAbs() {
		return u.String(), nil
	}
	return base.ResolveReference(u).String(), nil
}
