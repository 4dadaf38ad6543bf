/*
 * Cadence - The resource-oriented smart contract programming language
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/c-bata/go-prompt"
)

const replHelpMessage = `
Enter expressions to resolve them.
Commands are prefixed with a dot. Valid commands are:

.exit              Exit the resolver
.help              Print this help message
.explain <op>      Describe the precedence of an operator
.operators         List all registered operator spellings
.format <format>   Print results as source, tree, or json

Press ^D to exit`

const replAssistanceMessage = `Type '.help' for assistance.`

const replLocation = "repl"

func (s *session) runREPL() {
	printReplWelcome()

	lineNumber := 1

	executor := func(line string) {
		defer func() {
			lineNumber++
		}()

		line = strings.TrimSpace(line)
		if line == "" {
			return
		}

		if strings.HasPrefix(line, ".") {
			s.handleCommand(line)
			return
		}

		// Prefix the code with empty lines,
		// so that error messages match the current line number
		code := strings.Repeat("\n", lineNumber-1) + line

		_ = s.resolve(replLocation, code)
	}

	operatorSuggestions := s.operatorSuggestions()

	suggest := func(d prompt.Document) []prompt.Suggest {
		word := d.GetWordBeforeCursor()
		if len(word) == 0 || !unicode.IsUpper(rune(word[0])) {
			return nil
		}
		return prompt.FilterHasPrefix(operatorSuggestions, word, false)
	}

	changeLivePrefix := func() (string, bool) {
		return fmt.Sprintf("%d> ", lineNumber), true
	}

	options := []prompt.Option{
		prompt.OptionLivePrefix(changeLivePrefix),
	}
	prompt.New(executor, suggest, options...).Run()
}

// operatorSuggestions returns the word operators, which are completed in the REPL
func (s *session) operatorSuggestions() []prompt.Suggest {
	var suggestions []prompt.Suggest
	for _, spelling := range s.table.Spellings() {
		if !isWord(spelling) || !s.table.IsOperator(spelling) {
			continue
		}
		class := s.table.Canonicalize(spelling)
		suggestions = append(suggestions, prompt.Suggest{
			Text:        spelling,
			Description: class.Name,
		})
	}
	return suggestions
}

func isWord(spelling string) bool {
	for _, r := range spelling {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return spelling != ""
}

func (s *session) handleCommand(line string) {
	command, argument, _ := strings.Cut(line, " ")
	argument = strings.TrimSpace(argument)

	switch command {
	case ".exit":
		os.Exit(0)

	case ".help":
		fmt.Println(replHelpMessage)

	case ".explain":
		if argument == "" {
			fmt.Println(colorizeError("Missing operator. Usage: .explain <op>", s.useColor))
			return
		}
		fmt.Print(s.explain(argument))

	case ".operators":
		fmt.Println(strings.Join(s.table.Spellings(), " "))

	case ".format":
		format, ok := parseOutputFormat(argument)
		if !ok {
			fmt.Println(colorizeError(fmt.Sprintf("Unknown format %q. Valid formats are: source, tree, json", argument), s.useColor))
			return
		}
		s.format = format

	default:
		fmt.Println(colorizeError(fmt.Sprintf("Unknown command. %s", replAssistanceMessage), s.useColor))
	}
}

func printReplWelcome() {
	fmt.Printf("Welcome to the operator resolver!\n%s\n\n", replAssistanceMessage)
}
