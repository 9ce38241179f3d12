// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package canvas implements a software rendering backend for the HTML
canvas 2D drawing model. It renders to an [image.RGBA] with
premultiplied alpha, using [cogentcore.org/canvas/path] for geometry
and [cogentcore.org/canvas/raster] for coverage and compositing.

The main entry points are [DrawTarget], which owns the pixels and the
drawing operations (fill, stroke, clip, surface copies), [PaintState],
which holds the full set of canvas drawing state, and [Backend], which
translates canvas styles and composition modes into the concrete
[Paint] and [raster.BlendModes] values the draw target consumes.
*/
package canvas
