package macho

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// refLine matches one indented dependency line of an otool -L listing,
// e.g. "\t/usr/local/lib/libfoo.dylib (compatibility version 1.0.0, ...)"
var refLine = regexp.MustCompile(`^\s+(.+?) \(compatibility version`)

// ParseListing extracts dependency references from otool -L output.
// The first line of the listing is the queried binary's header and is
// ignored. Lines that do not match the expected pattern are skipped, not
// fatal: an unrecognized listing format must not block embedding of the
// references that do parse.
func ParseListing(out string, logger zerolog.Logger) []Reference {
	var refs []Reference

	scanner := bufio.NewScanner(strings.NewReader(out))
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			if strings.HasSuffix(strings.TrimSpace(line), ":") {
				continue
			}
		}
		m := refLine.FindStringSubmatch(line)
		if m == nil {
			if strings.TrimSpace(line) != "" {
				logger.Debug().Str("line", line).Msg("Skipping unparseable dependency line")
			}
			continue
		}
		refs = append(refs, NewReference(m[1]))
	}

	return refs
}
