// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ops declares the built in image and transform operations and
// registers them with the default registry. Each operation is an ordinary
// funcspec description; the CLI surfaces are derived from these
// declarations, never written by hand.
package ops
