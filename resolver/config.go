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

package resolver

import (
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
)

// OnRecordTraceFunc is a function that records a trace
type OnRecordTraceFunc func(
	operationName string,
	duration time.Duration,
	attrs []attribute.KeyValue,
)

// Config configures a Resolver
type Config struct {
	// Logger receives a debug event for every failed resolution,
	// and a trace event for every resolved layer
	Logger zerolog.Logger
	// OnRecordTrace is triggered when a trace is recorded
	OnRecordTrace OnRecordTraceFunc
	// TracingEnabled determines if tracing is enabled.
	// Tracing reports the resolution of every expression and every bracketed layer
	TracingEnabled bool
	// NoSpace permits a tight prefix operator to be juxtaposed with a following operand,
	// e.g. `-x y` resolves to `(-x) y`
	NoSpace bool
}

func defaultConfig() Config {
	return Config{
		Logger: zerolog.Nop(),
	}
}
