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

	"go.opentelemetry.io/otel/attribute"
)

const (
	tracingResolveOperation = "resolve"
	tracingLayerOperation   = "resolve.layer"
)

func (r *Resolver) tracingEnabled() bool {
	return r.config.TracingEnabled && r.config.OnRecordTrace != nil
}

func prepareResolveTraceAttrs(itemCount int, layerCount int, err error) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.Int("items", itemCount),
		attribute.Int("layers", layerCount),
	}
	if err != nil {
		attrs = append(attrs, attribute.String("error", KindOf(err).Name()))
	}
	return attrs
}

func (r *Resolver) reportResolveTrace(
	itemCount int,
	layerCount int,
	err error,
	duration time.Duration,
) {
	r.config.OnRecordTrace(
		tracingResolveOperation,
		duration,
		prepareResolveTraceAttrs(itemCount, layerCount, err),
	)
}

func (r *Resolver) reportLayerTrace(
	bracket string,
	itemCount int,
	duration time.Duration,
) {
	r.config.OnRecordTrace(
		tracingLayerOperation,
		duration,
		[]attribute.KeyValue{
			attribute.String("bracket", bracket),
			attribute.Int("items", itemCount),
		},
	)
}
