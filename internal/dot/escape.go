// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package dot

import (
	"regexp"
	"strings"
)

var (
	plainID   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	numeralID = regexp.MustCompile(`^-?(\.[0-9]+|[0-9]+(\.[0-9]*)?)$`)
)

// keywords may not be used as bare identifiers. DOT matches them case-insensitively.
var keywords = map[string]struct{}{
	"node": {}, "edge": {}, "graph": {}, "digraph": {}, "subgraph": {}, "strict": {},
}

// labelEscaper folds every line break into DOT's \n so a label stays on one line.
var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r\n", `\n`, "\n", `\n`, "\r", `\n`)

// idEscaper is one-to-one: distinct names always yield distinct identifiers.
var idEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`)

// ID renders name as a DOT identifier. Plain identifiers and numerals are
// emitted as they are; anything else becomes a quoted string.
func ID(name string) string {
	if _, reserved := keywords[strings.ToLower(name)]; !reserved {
		if plainID.MatchString(name) || numeralID.MatchString(name) {
			return name
		}
	}
	return `"` + idEscaper.Replace(name) + `"`
}

// quote renders s as a DOT label string.
func quote(s string) string {
	return `"` + labelEscaper.Replace(s) + `"`
}
