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
	"github.com/logrusorgru/aurora/v4"
)

func colorize(str string, color aurora.Color, useColor bool) string {
	if !useColor {
		return str
	}
	return aurora.Colorize(str, color).String()
}

func colorizeResult(str string, useColor bool) string {
	return colorize(str, aurora.YellowFg|aurora.BrightFg, useColor)
}

func colorizeNote(str string, useColor bool) string {
	return colorize(str, aurora.CyanFg|aurora.BrightFg, useColor)
}

func colorizeError(str string, useColor bool) string {
	return colorize(str, aurora.RedFg|aurora.BrightFg|aurora.BoldFm, useColor)
}
