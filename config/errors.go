// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrInvalid indicates a configuration value outside its domain. The
// wrapping error names the field.
var ErrInvalid = errors.New("config: invalid value")
