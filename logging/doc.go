// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package logging builds the process-wide slog logger: text output in dev
// and staging, JSON in prod, tagged with the environment name.
package logging
