// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Name cleans up a handwritten recipe name.
//
// Hyphens and underscores become spaces, anything other than ASCII letters
// and whitespace is dropped, whitespace runs collapse to a single space, and
// every word is capitalized with the rest lowercased. ok is false when
// nothing usable remains.
//
//	Name("Riz@z RISO00tto!") // "Rizz Risotto", true
//	Name("meatball_-_sub")   // "Meatball Sub", true
//	Name("123 !!")           // "", false
func Name(raw string) (string, bool) {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r == '-' || r == '_':
			b.WriteByte(' ')
		case isASCIILetter(r), unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}

	words := strings.Fields(b.String())
	if len(words) == 0 {
		return "", false
	}

	// Caser keeps per-call state and must not be shared.
	caser := cases.Title(language.English)
	return caser.String(strings.Join(words, " ")), true
}

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
