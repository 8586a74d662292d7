// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package artifact defines the two artifact kinds that voxcli commands
// exchange through the filesystem: raster images and affine transforms.
// It also provides the codec that loads and saves them, dispatching on the
// artifact's runtime kind.
package artifact
