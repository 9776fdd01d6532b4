// Package ytdlp implements a media source backed by the external yt-dlp
// resolver binary. Every operation shells out: the resolver owns extraction,
// selector-expression evaluation and transcoding, while this package only
// builds arguments and maps the JSON it emits into domain models.
package ytdlp

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/viper"

	"github.com/utune-cli/utune/constant"
	"github.com/utune-cli/utune/key"
	"github.com/utune-cli/utune/log"
)

// Name identifies the provider in configuration and CLI output.
const Name = "ytdlp"

// ID is the stable provider identifier.
const ID = "ytdlp"

// Source talks to the resolver binary. The execute hook is swappable so tests
// can feed canned resolver output without a binary on PATH.
type Source struct {
	execute          func(arguments ...string) ([]byte, error)
	jsRuntime        string
	remoteComponents []string
}

// New returns a Source wired to the real resolver binary with the optional
// runtime passthrough settings read from configuration.
func New() *Source {
	return &Source{
		execute:          runResolver,
		jsRuntime:        viper.GetString(key.ResolverJSRuntime),
		remoteComponents: viper.GetStringSlice(key.ResolverRemoteComponents),
	}
}

// Name returns the unique identifier for the provider.
func (s *Source) Name() string {
	return Name
}

// ID returns the unique identifier of the source instance.
func (s *Source) ID() string {
	return ID
}

// passthrough forwards optional resolver tuning from configuration.
func (s *Source) passthrough() []string {
	var arguments []string
	if s.jsRuntime != "" {
		arguments = append(arguments, "--js-runtime", s.jsRuntime)
	}
	for _, component := range s.remoteComponents {
		arguments = append(arguments, "--remote-components", component)
	}
	return arguments
}

// runResolver executes the resolver binary and returns its stdout. Stderr is
// folded into the error so failures surface the resolver's own message.
func runResolver(arguments ...string) ([]byte, error) {
	log.Debugf("%s %s", constant.Resolver, strings.Join(arguments, " "))

	cmd := exec.Command(constant.Resolver, arguments...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		message := strings.TrimSpace(stderr.String())
		if message == "" {
			return nil, fmt.Errorf("%s: %w", constant.Resolver, err)
		}
		return nil, fmt.Errorf("%s: %w: %s", constant.Resolver, err, message)
	}

	return stdout.Bytes(), nil
}
