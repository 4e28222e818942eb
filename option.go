/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package dresult

import (
	"errors"

	"dirpx.dev/dresult/status"
)

// Option configures how FromErr classifies a plain error.
type Option func(*fromErrConfig)

type statusRule struct {
	target error
	status status.Status
}

type fromErrConfig struct {
	rules         []statusRule
	correlationID string
}

// WithRule classifies errors matching target (via errors.Is) as st.
// Rules are evaluated in the order given; the first match wins.
//
// Mapping to Ok or NoContent is ignored: a non-nil error is never a
// success. Mapping to Invalid is ignored as well, because a plain error
// carries no validation records.
func WithRule(target error, st status.Status) Option {
	return func(c *fromErrConfig) {
		if st.IsSuccess() || st == status.Invalid {
			return
		}
		c.rules = append(c.rules, statusRule{target: target, status: st})
	}
}

// WithCorrelationID sets the correlation id of the resulting outcome when
// it ends up with status Error. Other statuses never carry one.
func WithCorrelationID(id string) Option {
	return func(c *fromErrConfig) { c.correlationID = id }
}

// FromErr turns a plain error into a void outcome:
//
//   - nil yields Success();
//   - a *Failure anywhere in the chain yields the outcome it carries;
//   - an error matching a WithRule target yields that status with
//     err.Error() as the single message;
//   - anything else yields Error with err.Error() as the message.
func FromErr(err error, opts ...Option) Void {
	if err == nil {
		return Success()
	}
	if f, ok := AsFailure(err); ok {
		return f.outcome
	}
	var cfg fromErrConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	for _, rule := range cfg.rules {
		if errors.Is(err, rule.target) {
			if rule.status == status.Error {
				break
			}
			return failure(rule.status, []string{err.Error()})
		}
	}
	return Error(NewErrorList(cfg.correlationID, err.Error()))
}
