// Copyright 2026 go-dense Authors
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

package dense

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Format describes the textual conventions a vector literal is parsed
// under: the rune separating values and the rune marking the decimal point.
type Format struct {
	Separator rune
	Decimal   rune
}

// DefaultFormat is the comma-separated, point-decimal convention:
// "(1.5, 2, 3)".
var DefaultFormat = Format{Separator: ',', Decimal: '.'}

// commaDecimalFormat is the convention of locales writing 1,5 for
// three-halves; the list separator moves to a semicolon there.
var commaDecimalFormat = Format{Separator: ';', Decimal: ','}

// formatTags pairs each supported language with its convention. English is
// first: it is the matcher's fallback for unknown tags.
var formatTags = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
	language.Italian,
	language.Portuguese,
	language.Dutch,
	language.Swedish,
	language.Polish,
	language.Russian,
	language.Turkish,
}

var formatMatcher = language.NewMatcher(formatTags)

// FormatFor returns the parse Format conventional for the given language
// tag. Unrecognized tags fall back to DefaultFormat.
func FormatFor(tag language.Tag) Format {
	_, index, _ := formatMatcher.Match(tag)
	if index == 0 {
		return DefaultFormat
	}
	return commaDecimalFormat
}

// ParseVector parses a vector literal under DefaultFormat.
func ParseVector(s string) (*DenseVector, error) {
	return ParseVectorIn(s, DefaultFormat)
}

// ParseVectorIn parses a vector literal under the given format.
//
// The literal is a separator-delimited list of floating-point values,
// optionally enclosed in ( ) or [ ]. Empty input, a mismatched bracket, an
// empty value slot (two adjacent separators, or a leading or trailing one)
// and any unparseable token all return ErrFormat.
//
//	ParseVectorIn("(1, 2, 3)", DefaultFormat)
//	ParseVectorIn("[1,5; 2; 3]", FormatFor(language.German))
func ParseVectorIn(s string, f Format) (*DenseVector, error) {
	body := strings.TrimSpace(s)
	if body == "" {
		return nil, fmt.Errorf("empty input: %w", ErrFormat)
	}

	body, err := stripBrackets(body)
	if err != nil {
		return nil, err
	}
	if body == "" {
		return nil, fmt.Errorf("no values: %w", ErrFormat)
	}

	tokens := strings.Split(body, string(f.Separator))
	data := make([]float64, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return nil, fmt.Errorf("empty value at position %d: %w", i, ErrFormat)
		}
		if f.Decimal != '.' {
			// The host decimal point must not appear alongside the
			// format's own; that would make "1.5" silently parse as 1.5
			// in a comma-decimal locale.
			if strings.ContainsRune(tok, '.') {
				return nil, fmt.Errorf("unexpected '.' in %q: %w", tok, ErrFormat)
			}
			tok = strings.ReplaceAll(tok, string(f.Decimal), ".")
		}

		x, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", tok, ErrFormat)
		}
		data[i] = x
	}

	return &DenseVector{data: data}, nil
}

// stripBrackets removes one matched pair of enclosing ( ) or [ ] brackets.
// An opening bracket without its closing partner (or vice versa) is a
// format error.
func stripBrackets(s string) (string, error) {
	open := s[0]
	close_ := s[len(s)-1]

	switch open {
	case '(', '[':
		want := byte(')')
		if open == '[' {
			want = ']'
		}
		if len(s) < 2 || close_ != want {
			return "", fmt.Errorf("unbalanced %q: %w", string(open), ErrFormat)
		}
		return strings.TrimSpace(s[1 : len(s)-1]), nil
	}

	if close_ == ')' || close_ == ']' {
		return "", fmt.Errorf("unbalanced %q: %w", string(close_), ErrFormat)
	}
	return s, nil
}
